package ast

type NodeType int

const (
	ILLEGAL NodeType = iota
	BAD_STMT

	// Program structure
	PROGRAM

	// Statements
	ASSIGN_STMT
	PRINT_STMT
	PRINT_CHAR_STMT
	PRINT_NEWLINE_STMT
	INPUT_STMT
	CONDITIONAL_STMT
	GOTO_STMT
	RETURN_STMT

	// Expressions
	NUMBER_EXPR
	VARIABLE_EXPR
	BINARY_EXPR
)

var nodeTypeNames = [...]string{
	ILLEGAL:            "ILLEGAL",
	BAD_STMT:           "BAD_STMT",
	PROGRAM:            "PROGRAM",
	ASSIGN_STMT:        "ASSIGN_STMT",
	PRINT_STMT:         "PRINT_STMT",
	PRINT_CHAR_STMT:    "PRINT_CHAR_STMT",
	PRINT_NEWLINE_STMT: "PRINT_NEWLINE_STMT",
	INPUT_STMT:         "INPUT_STMT",
	CONDITIONAL_STMT:   "CONDITIONAL_STMT",
	GOTO_STMT:          "GOTO_STMT",
	RETURN_STMT:        "RETURN_STMT",
	NUMBER_EXPR:        "NUMBER_EXPR",
	VARIABLE_EXPR:      "VARIABLE_EXPR",
	BINARY_EXPR:        "BINARY_EXPR",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) && nodeTypeNames[t] != "" {
		return nodeTypeNames[t]
	}
	return "NodeType(?)"
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int // 0-based byte offset
	Line     int // 1-based
	Column   int // 1-based, counted in runes
}
