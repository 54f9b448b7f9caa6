package ir

import (
	"fmt"

	"umjunsik/internal/ast"
)

type CodeGenErrorKind int

const (
	// UnresolvedLabel: a goto names a line that does not exist
	UnresolvedLabel CodeGenErrorKind = iota
	// SlotInvariant: a variable was used without a slot from usage analysis
	SlotInvariant
	// BlockOrder: an instruction was emitted after its block terminated
	BlockOrder
)

func (k CodeGenErrorKind) String() string {
	switch k {
	case UnresolvedLabel:
		return "unresolved label"
	case SlotInvariant:
		return "slot invariant"
	case BlockOrder:
		return "block order"
	default:
		return "unknown"
	}
}

// CodeGenError reports a failure of code generation. SlotInvariant and
// BlockOrder indicate a compiler defect rather than a bad program.
type CodeGenError struct {
	Kind     CodeGenErrorKind
	Line     int // program line number, 0 if not tied to a line
	Position ast.Position
	Message  string
}

func (e *CodeGenError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d: %s", e.Kind, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Warning is a non-fatal condition found during generation
type Warning struct {
	Line     int
	Position ast.Position
	Message  string
}
