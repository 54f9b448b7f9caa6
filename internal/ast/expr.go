package ast

// Operator is the arithmetic operator of a BinaryOp.
type Operator int

const (
	Add Operator = iota
	Sub
	Mul
)

func (op Operator) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	default:
		return "?"
	}
}

// Number is a constant built from a run of '.' (+1) and ',' (-1) markers.
type Number struct {
	Pos   Position
	Value int64
}

// Variable reads the variable whose index the scanner derived from the
// length of a run of '어' markers.
type Variable struct {
	Pos   Position
	Index int
}

type BinaryOp struct {
	Pos   Position
	Op    Operator
	Left  Expr
	Right Expr
}
