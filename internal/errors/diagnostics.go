package errors

import (
	goerrors "errors"

	"umjunsik/internal/ast"
	"umjunsik/internal/ir"
	"umjunsik/internal/parser"
	"umjunsik/token"
)

// Conversions from stage-specific error values into CompilerError

func toASTPosition(filename string, pos parser.Position) ast.Position {
	return ast.Position{
		Filename: filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}

// FromScanError converts a scanner error
func FromScanError(filename string, err parser.ScanError) CompilerError {
	pos := toASTPosition(filename, err.Position)
	if err.Kind == parser.IncompleteKeyword {
		return NewSemanticError(ErrorIncompleteKeyword, err.Message, pos).
			WithSuggestion("write " + token.CONDITIONAL + " for a conditional").
			Build()
	}
	return NewSemanticError(ErrorUnexpectedCharacter, err.Message, pos).Build()
}

// FromParseError converts a parser error, listing the expected tokens as a note
func FromParseError(filename string, err parser.ParseError) CompilerError {
	code := ErrorMalformedStatement
	switch err.Kind {
	case parser.MissingStart:
		code = ErrorMissingStart
	case parser.UnexpectedEOF:
		code = ErrorUnexpectedEOF
	case parser.NonConstantGoto:
		code = ErrorNonConstantGoto
	}

	builder := NewSemanticError(code, err.Message, toASTPosition(filename, err.Position))
	for _, expected := range err.Expected {
		builder = builder.WithNote("expected " + expected)
	}
	if code == ErrorUnexpectedEOF {
		builder = builder.WithReplacement("end the program", token.END, toASTPosition(filename, err.Position), 0)
	}
	return builder.Build()
}

// FromCodeGenError converts a code generation failure. Errors that are not
// a *ir.CodeGenError are reported without a code.
func FromCodeGenError(filename string, err error) CompilerError {
	var cgErr *ir.CodeGenError
	if !goerrors.As(err, &cgErr) {
		return CompilerError{Level: Error, Message: err.Error(), Position: ast.Position{Filename: filename}}
	}

	pos := cgErr.Position
	pos.Filename = filename

	var builder *SemanticErrorBuilder
	switch cgErr.Kind {
	case ir.UnresolvedLabel:
		builder = NewSemanticError(ErrorUnresolvedLabel, cgErr.Message, pos).
			WithNote("lines are numbered from 1 in order, skipping blank lines")
	case ir.SlotInvariant:
		builder = NewSemanticError(ErrorSlotInvariant, cgErr.Message, pos).
			WithHelp("this is a compiler bug, please report it")
	default:
		builder = NewSemanticError(ErrorBlockOrder, cgErr.Message, pos).
			WithHelp("this is a compiler bug, please report it")
	}
	return builder.Build()
}

// FromWarning converts a code generation warning. The only warning codegen
// raises is the console input placeholder.
func FromWarning(filename string, w ir.Warning) CompilerError {
	pos := w.Position
	pos.Filename = filename
	return NewSemanticWarning(WarningInputPlaceholder, w.Message, pos).
		WithNote("the variable keeps its previous value when the program runs").
		WithHelp("assign the value directly instead of reading it from the console").
		Build()
}
