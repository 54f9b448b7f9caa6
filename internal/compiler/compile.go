// Package compiler runs the full pipeline from source text to Lamina IR.
package compiler

import (
	"fmt"

	"github.com/tliron/commonlog"

	"umjunsik/internal/ast"
	"umjunsik/internal/errors"
	"umjunsik/internal/ir"
	"umjunsik/internal/parser"
	"umjunsik/internal/semantic"
)

var log = commonlog.GetLogger("umjunsik.compiler")

// Stage names the pipeline step that failed
type Stage string

const (
	StageParse   Stage = "parse"
	StageCodeGen Stage = "codegen"
)

// Result holds every intermediate product of a compilation. Fields after
// the failing stage are left empty.
type Result struct {
	Tokens   []parser.Token
	Program  *ast.Program
	Function *ir.Function
	IR       string
	Slots    map[int]int // variable index to slot id
	Warnings []errors.CompilerError
}

// Error is returned when a stage reports diagnostics that stop compilation.
// Cause is the underlying code generation error, if any.
type Error struct {
	Stage       Stage
	Diagnostics []errors.CompilerError
	Cause       error
}

func (e *Error) Error() string {
	if len(e.Diagnostics) == 0 {
		return fmt.Sprintf("%s failed", e.Stage)
	}
	msg := fmt.Sprintf("%s failed: %s", e.Stage, e.Diagnostics[0].Error())
	if n := len(e.Diagnostics) - 1; n > 0 {
		msg += fmt.Sprintf(" (and %d more)", n)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Compile scans, parses, lints and lowers source. The returned Result is
// never nil, so callers such as the language server can use the tokens and
// program of a source that failed to compile.
func Compile(name, source string) (*Result, error) {
	result := &Result{}

	scanner := parser.NewScanner(source)
	result.Tokens = scanner.ScanTokens()

	p := parser.NewParser(name, result.Tokens)
	result.Program = p.ParseProgram()

	var diagnostics []errors.CompilerError
	for _, err := range scanner.Errors() {
		diagnostics = append(diagnostics, errors.FromScanError(name, err))
	}
	for _, err := range p.Errors() {
		diagnostics = append(diagnostics, errors.FromParseError(name, err))
	}
	if len(diagnostics) > 0 {
		log.Debugf("%s: %d scan/parse errors", name, len(diagnostics))
		return result, &Error{Stage: StageParse, Diagnostics: diagnostics}
	}

	analyzer := semantic.NewAnalyzer()
	result.Warnings = append(result.Warnings, analyzer.Analyze(result.Program)...)

	fn, warnings, err := ir.Generate(result.Program)
	for _, w := range warnings {
		result.Warnings = append(result.Warnings, errors.FromWarning(name, w))
	}
	if err != nil {
		log.Debugf("%s: code generation failed: %s", name, err)
		return result, &Error{
			Stage:       StageCodeGen,
			Diagnostics: []errors.CompilerError{errors.FromCodeGenError(name, err)},
			Cause:       err,
		}
	}

	result.Function = fn
	result.IR = ir.Print(fn)
	result.Slots = fn.SlotMapping()
	log.Debugf("%s: %d lines, %d slots, %d warnings", name, len(result.Program.Lines), len(fn.Slots), len(result.Warnings))

	return result, nil
}
