package ir

// This file provides the main entry points for code generation

import (
	"umjunsik/internal/ast"
)

// Generate lowers a parsed program into the main function. It performs no
// I/O and returns identical output for identical input.
func Generate(program *ast.Program) (*Function, []Warning, error) {
	builder := NewBuilder()
	fn, err := builder.Build(program)
	if err != nil {
		return nil, builder.Warnings(), err
	}
	return fn, builder.Warnings(), nil
}

// GenerateText is Generate followed by Print
func GenerateText(program *ast.Program) (string, []Warning, error) {
	fn, warnings, err := Generate(program)
	if err != nil {
		return "", warnings, err
	}
	return Print(fn), warnings, nil
}
