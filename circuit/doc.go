// Package circuit records an ordered program of gate operations and replays
// it against the qsim engines.
//
// 🚀 What lives here?
//
//	• Circuit       — qubit count + ordered []Gate descriptors
//	• recorder API  — H, X, Y, Z, S, T, RX, RY, RZ, CNOT, CRY, CRZ
//	• Execute       — fresh statevec engine, ordered replay
//	• ExecuteNoisy  — replay, convert to a density matrix, apply channels
//
// Recording never fails: the recorder is a plain builder and descriptors
// are consumed by value. All validation happens at replay, where the
// engines check indices and kinds before mutating anything; the first
// failing gate aborts the whole replay and is identified in the wrapped
// error.
//
// Noisy execution order is fixed: full pure-state replay, then the outer
// product, then amplitude damping, then phase damping. A channel whose
// probability is zero is skipped entirely.
//
// Errors (sentinel):
//
//	– ErrUnsupportedGate — CRZ is recognized by the circuit model but not
//	  implemented by the evolution engine.
//	– engine errors (statevec.ErrQubitOutOfRange, statevec.ErrSameQubit,
//	  gates.ErrUnknownGate, statevec.ErrQubitCount) pass through wrapped;
//	  match them with errors.Is.
package circuit
