package svgpath

// CommandKind identifies one drawing command of a path description.
type CommandKind uint8

const (
	Unknown CommandKind = iota
	MoveTo
	LineTo
	HLineTo
	VLineTo
	CubicTo
	SmoothCubicTo
	QuadTo
	SmoothQuadTo
	ArcTo
	ClosePath
)

// Command is one decoded path command with its coordinates.
// X, Y is the endpoint; X1, Y1 and X2, Y2 are control points
// (a smooth cubic stores its given control in X2, Y2, a
// quadratic stores its control in X1, Y1). Arc commands use
// Rx, Ry, Rotation, LargeArc and Sweep.
type Command struct {
	Kind     CommandKind
	Rel      bool
	X, Y     float64
	X1, Y1   float64
	X2, Y2   float64
	Rx, Ry   float64
	Rotation float64
	LargeArc bool
	Sweep    bool

	// Letter is the command character as written, kept for diagnostics.
	Letter byte
}

// arity returns the number of coordinate values one group of
// the command consumes, or -1 when the letter is not a path command.
func commandArity(letter byte) int {
	switch letter {
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2
	case 'H', 'h', 'V', 'v':
		return 1
	case 'C', 'c':
		return 6
	case 'S', 's', 'Q', 'q':
		return 4
	case 'A', 'a':
		return 7
	case 'Z', 'z':
		return 0
	}
	return -1
}

func commandKind(letter byte) CommandKind {
	switch letter {
	case 'M', 'm':
		return MoveTo
	case 'L', 'l':
		return LineTo
	case 'H', 'h':
		return HLineTo
	case 'V', 'v':
		return VLineTo
	case 'C', 'c':
		return CubicTo
	case 'S', 's':
		return SmoothCubicTo
	case 'Q', 'q':
		return QuadTo
	case 'T', 't':
		return SmoothQuadTo
	case 'A', 'a':
		return ArcTo
	case 'Z', 'z':
		return ClosePath
	}
	return Unknown
}

func isRelative(letter byte) bool {
	return letter >= 'a' && letter <= 'z'
}
