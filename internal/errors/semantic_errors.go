package errors

import (
	"fmt"

	"umjunsik/internal/ast"
)

// SemanticErrorBuilder provides a fluent interface for creating semantic errors with suggestions
type SemanticErrorBuilder struct {
	err CompilerError
}

// NewSemanticError creates a new semantic error builder
func NewSemanticError(code, message string, pos ast.Position) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewSemanticWarning creates a new semantic warning builder
func NewSemanticWarning(code, message string, pos ast.Position) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{
		err: CompilerError{
			Level:    Warning,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *SemanticErrorBuilder) WithLength(length int) *SemanticErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *SemanticErrorBuilder) WithSuggestion(message string) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *SemanticErrorBuilder) WithReplacement(message, replacement string, pos ast.Position, length int) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Position:    pos,
		Length:      length,
	})
	return b
}

// WithNote adds a note to the error
func (b *SemanticErrorBuilder) WithNote(note string) *SemanticErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *SemanticErrorBuilder) WithHelp(help string) *SemanticErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *SemanticErrorBuilder) Build() CompilerError {
	return b.err
}

// Common semantic warning constructors with suggestions

// UnusedVariable creates a warning for a variable that is stored but never read
func UnusedVariable(index int, pos ast.Position) CompilerError {
	return NewSemanticWarning(WarningUnusedVariable, fmt.Sprintf("variable %d is assigned but never read", index), pos).
		WithLength(index + 1).
		WithSuggestion("remove the assignment if it's not needed").
		WithNote("unused variables still occupy a stack slot").
		Build()
}

// UnreachableCode creates a warning for a line no control path reaches
func UnreachableCode(line int, pos ast.Position) CompilerError {
	return NewSemanticWarning(WarningUnreachableCode, fmt.Sprintf("line %d is unreachable", line), pos).
		WithSuggestion("remove the line or add a 준 that jumps to it").
		WithNote("lines after an unconditional 준 or 화이팅 only run when a goto targets them").
		Build()
}

// UnassignedVariable creates a warning for a read of a variable nothing assigns
func UnassignedVariable(index int, pos ast.Position) CompilerError {
	return NewSemanticWarning(WarningUnassignedVariable, fmt.Sprintf("variable %d is read but never assigned", index), pos).
		WithLength(index + 1).
		WithNote("variables start at zero").
		Build()
}
