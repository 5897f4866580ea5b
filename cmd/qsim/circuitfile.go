package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quvant/qsim/circuit"
	"github.com/quvant/qsim/gates"
)

// circuitFile is the on-disk circuit description:
//
//	qubits: 2
//	gates:
//	  - kind: H
//	    target: 0
//	  - kind: CNOT
//	    control: 0
//	    target: 1
//	  - kind: RY
//	    target: 1
//	    theta: 0.785398
type circuitFile struct {
	Qubits int        `yaml:"qubits"`
	Gates  []gateSpec `yaml:"gates"`
}

type gateSpec struct {
	Kind    string  `yaml:"kind"`
	Target  int     `yaml:"target"`
	Control *int    `yaml:"control"`
	Theta   float64 `yaml:"theta"`
}

// loadCircuit decodes a circuit file into a replayable program. Gate names
// and the control/kind pairing are checked here; qubit indices are left to
// the engines at replay.
func loadCircuit(path string) (*circuit.Circuit, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file circuitFile
	if err = yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return buildCircuit(file)
}

func buildCircuit(file circuitFile) (*circuit.Circuit, error) {
	c := circuit.New(file.Qubits)
	for i, spec := range file.Gates {
		kind, err := gates.ParseKind(spec.Kind)
		if err != nil {
			return nil, fmt.Errorf("gate %d: %q: %w", i, spec.Kind, err)
		}

		g := circuit.Gate{Kind: kind, Target: spec.Target, Control: circuit.NoControl, Theta: spec.Theta}
		switch {
		case kind.Controlled() && spec.Control == nil:
			return nil, fmt.Errorf("gate %d: %s requires a control qubit", i, kind)
		case !kind.Controlled() && spec.Control != nil:
			return nil, fmt.Errorf("gate %d: %s takes no control qubit", i, kind)
		case spec.Control != nil:
			g.Control = *spec.Control
		}

		c.Append(g)
	}

	return c, nil
}
