package semantic

import (
	"umjunsik/internal/ast"
	"umjunsik/internal/errors"
)

// Analyzer runs the lints over a parsed program. Lints only produce
// warnings; a program that parses always passes analysis.
type Analyzer struct {
	program *ast.Program
	errors  []errors.CompilerError
	symbols *SymbolTable
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		errors: make([]errors.CompilerError, 0),
	}
}

func (a *Analyzer) Analyze(program *ast.Program) []errors.CompilerError {
	a.program = program
	a.errors = make([]errors.CompilerError, 0)
	a.symbols = NewSymbolTable()

	for _, line := range program.Lines {
		a.collectStmt(line.Stmt)
	}
	a.checkVariables()

	flow := NewFlowAnalyzer(a)
	flow.AnalyzeProgram(program)

	return a.errors
}

// GetErrors returns the warnings of the last analysis
func (a *Analyzer) GetErrors() []errors.CompilerError {
	return a.errors
}

// Symbols returns the variable table built by the last analysis
func (a *Analyzer) Symbols() *SymbolTable {
	return a.symbols
}

func (a *Analyzer) addCompilerError(err errors.CompilerError) {
	a.errors = append(a.errors, err)
}

func (a *Analyzer) collectStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Assign:
		a.collectExpr(s.Value)
		a.symbols.Assign(s.Index, s.Pos)
	case *ast.Input:
		a.symbols.Assign(s.Index, s.Pos)
	case *ast.Print:
		a.collectExpr(s.Value)
	case *ast.PrintChar:
		a.collectExpr(s.Value)
	case *ast.Conditional:
		// The guard is a read; its position is the statement's.
		a.symbols.Read(s.Guard, s.Pos)
		a.collectStmt(s.Body)
	case *ast.Return:
		if s.Value != nil {
			a.collectExpr(s.Value)
		}
	}
}

func (a *Analyzer) collectExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		a.symbols.Read(e.Index, e.Pos)
	case *ast.BinaryOp:
		a.collectExpr(e.Left)
		a.collectExpr(e.Right)
	}
}

func (a *Analyzer) checkVariables() {
	for _, symbol := range a.symbols.Symbols() {
		switch {
		case len(symbol.Assigns) == 0:
			a.addCompilerError(errors.UnassignedVariable(symbol.Index, symbol.Reads[0]))
		case len(symbol.Reads) == 0:
			a.addCompilerError(errors.UnusedVariable(symbol.Index, symbol.Assigns[0]))
		}
	}
}
