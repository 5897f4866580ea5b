package gates

import "math"

// Matrix returns the 2×2 unitary for a single-qubit kind. The theta
// argument is read only for RX, RY and RZ (radians); other kinds ignore it.
//
// Two-qubit kinds (CNOT, CRY, CRZ) have no standalone 2×2 unitary on this
// path and yield ErrUnknownGate, as does any value outside the enumeration.
// The CRY pair transform is built from RY by the state engine.
//
// Layout: m[row][col], so applying m to the amplitude pair (a, b) gives
// (m[0][0]·a + m[0][1]·b, m[1][0]·a + m[1][1]·b).
func Matrix(k Kind, theta float64) ([2][2]complex128, error) {
	switch k {
	case H:
		s := complex(1/math.Sqrt2, 0)

		return [2][2]complex128{{s, s}, {s, -s}}, nil
	case X:
		return [2][2]complex128{{0, 1}, {1, 0}}, nil
	case Y:
		return [2][2]complex128{{0, -1i}, {1i, 0}}, nil
	case Z:
		return [2][2]complex128{{1, 0}, {0, -1}}, nil
	case S:
		return [2][2]complex128{{1, 0}, {0, 1i}}, nil
	case T:
		// e^{iπ/4} = (1+i)/√2
		s := 1 / math.Sqrt2

		return [2][2]complex128{{1, 0}, {0, complex(s, s)}}, nil
	case RX:
		c := complex(math.Cos(theta/2), 0)
		js := complex(0, -math.Sin(theta/2))

		return [2][2]complex128{{c, js}, {js, c}}, nil
	case RY:
		c := complex(math.Cos(theta/2), 0)
		s := complex(math.Sin(theta/2), 0)

		return [2][2]complex128{{c, -s}, {s, c}}, nil
	case RZ:
		neg := complex(math.Cos(-theta/2), math.Sin(-theta/2))
		pos := complex(math.Cos(theta/2), math.Sin(theta/2))

		return [2][2]complex128{{neg, 0}, {0, pos}}, nil
	default:
		return [2][2]complex128{}, ErrUnknownGate
	}
}
