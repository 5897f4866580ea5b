package circuit

import (
	"errors"
	"fmt"

	"github.com/quvant/qsim/density"
	"github.com/quvant/qsim/gates"
	"github.com/quvant/qsim/statevec"
)

// ErrUnsupportedGate indicates a kind the circuit model records but the
// evolution engine does not implement (controlled-RZ).
var ErrUnsupportedGate = errors.New("circuit: gate kind not supported by the evolution engine")

// NoControl marks the Control field of an uncontrolled gate descriptor.
const NoControl = -1

// Gate is one recorded operation: a kind, its target qubit, an optional
// control qubit (NoControl when absent) and an optional rotation angle in
// radians. Descriptors are consumed by value during replay.
type Gate struct {
	Kind    gates.Kind
	Target  int
	Control int
	Theta   float64
}

// Circuit is an ordered gate program over a fixed-size register. The zero
// value is unusable; build with New. Recording methods return the circuit
// for chaining and never fail — validation belongs to replay.
type Circuit struct {
	qubits int
	gates  []Gate
}

// New returns an empty circuit over the given register size. The size is
// validated at replay by the engines, not here.
func New(qubits int) *Circuit {
	return &Circuit{qubits: qubits}
}

// Qubits returns the register size the circuit was built for.
func (c *Circuit) Qubits() int { return c.qubits }

// Gates returns a copy of the recorded program.
func (c *Circuit) Gates() []Gate {
	out := make([]Gate, len(c.gates))
	copy(out, c.gates)

	return out
}

// Len returns the number of recorded gates.
func (c *Circuit) Len() int { return len(c.gates) }

func (c *Circuit) record(g Gate) *Circuit {
	c.gates = append(c.gates, g)

	return c
}

// Append records pre-built descriptors, for callers that assemble programs
// generically (file loaders, host bindings) instead of through the typed
// recorder methods. Descriptors are copied in; later validation is replay's.
func (c *Circuit) Append(gs ...Gate) *Circuit {
	c.gates = append(c.gates, gs...)

	return c
}

// H records a Hadamard on target.
func (c *Circuit) H(target int) *Circuit {
	return c.record(Gate{Kind: gates.H, Target: target, Control: NoControl})
}

// X records a Pauli-X on target.
func (c *Circuit) X(target int) *Circuit {
	return c.record(Gate{Kind: gates.X, Target: target, Control: NoControl})
}

// Y records a Pauli-Y on target.
func (c *Circuit) Y(target int) *Circuit {
	return c.record(Gate{Kind: gates.Y, Target: target, Control: NoControl})
}

// Z records a Pauli-Z on target.
func (c *Circuit) Z(target int) *Circuit {
	return c.record(Gate{Kind: gates.Z, Target: target, Control: NoControl})
}

// S records the phase gate on target.
func (c *Circuit) S(target int) *Circuit {
	return c.record(Gate{Kind: gates.S, Target: target, Control: NoControl})
}

// T records the π/8 gate on target.
func (c *Circuit) T(target int) *Circuit {
	return c.record(Gate{Kind: gates.T, Target: target, Control: NoControl})
}

// RX records a rotation about X by theta radians on target.
func (c *Circuit) RX(target int, theta float64) *Circuit {
	return c.record(Gate{Kind: gates.RX, Target: target, Control: NoControl, Theta: theta})
}

// RY records a rotation about Y by theta radians on target.
func (c *Circuit) RY(target int, theta float64) *Circuit {
	return c.record(Gate{Kind: gates.RY, Target: target, Control: NoControl, Theta: theta})
}

// RZ records a rotation about Z by theta radians on target.
func (c *Circuit) RZ(target int, theta float64) *Circuit {
	return c.record(Gate{Kind: gates.RZ, Target: target, Control: NoControl, Theta: theta})
}

// CNOT records a controlled-NOT.
func (c *Circuit) CNOT(control, target int) *Circuit {
	return c.record(Gate{Kind: gates.CNOT, Target: target, Control: control})
}

// CRY records a controlled rotation about Y by theta radians.
func (c *Circuit) CRY(control, target int, theta float64) *Circuit {
	return c.record(Gate{Kind: gates.CRY, Target: target, Control: control, Theta: theta})
}

// CRZ records a controlled rotation about Z. The recorder accepts it; the
// engine rejects it at replay with ErrUnsupportedGate.
func (c *Circuit) CRZ(control, target int, theta float64) *Circuit {
	return c.record(Gate{Kind: gates.CRZ, Target: target, Control: control, Theta: theta})
}

// Execute replays the program, in order, against a freshly initialized
// state-vector engine and returns the evolved state. The first failing
// gate aborts the replay; the error names its position and kind and wraps
// the engine sentinel for errors.Is.
func (c *Circuit) Execute(opts ...statevec.Option) (*statevec.StateVector, error) {
	state, err := statevec.New(c.qubits, opts...)
	if err != nil {
		return nil, fmt.Errorf("circuit: %w", err)
	}

	for i, g := range c.gates {
		if err = replay(state, g); err != nil {
			return nil, fmt.Errorf("circuit: gate %d (%s): %w", i, g.Kind, err)
		}
	}

	return state, nil
}

// ExecuteNoisy replays the program as Execute does, converts the finished
// pure state into a density matrix, then applies amplitude damping and
// phase damping with the given probabilities, in that fixed order; a zero
// probability skips its channel. The statevec options configure the replay
// engine; the density matrix uses its package defaults.
func (c *Circuit) ExecuteNoisy(ampDamping, phaseDamping float64, opts ...statevec.Option) (*density.DensityMatrix, error) {
	state, err := c.Execute(opts...)
	if err != nil {
		return nil, err
	}

	dm, err := density.New(c.qubits)
	if err != nil {
		return nil, fmt.Errorf("circuit: %w", err)
	}
	if err = dm.FromPureState(state); err != nil {
		return nil, fmt.Errorf("circuit: %w", err)
	}

	if ampDamping > 0 {
		dm.ApplyAmplitudeDamping(ampDamping)
	}
	if phaseDamping > 0 {
		dm.ApplyPhaseDamping(phaseDamping)
	}

	return dm, nil
}

// replay dispatches one descriptor to the engine. The switch is exhaustive
// over the recorded kinds; anything else falls to the engine's own
// unknown-kind path.
func replay(state *statevec.StateVector, g Gate) error {
	switch g.Kind {
	case gates.CNOT:
		return state.ApplyCNOT(g.Control, g.Target)
	case gates.CRY:
		return state.ApplyControlledRY(g.Control, g.Target, g.Theta)
	case gates.CRZ:
		return ErrUnsupportedGate
	default:
		return state.ApplyGate(g.Kind, g.Target, g.Theta)
	}
}
