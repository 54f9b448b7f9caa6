package semantic

import (
	mapset "github.com/deckarep/golang-set"

	"umjunsik/internal/ast"
	"umjunsik/internal/errors"
)

// FlowAnalyzer finds lines that no control path from the first line reaches
type FlowAnalyzer struct {
	analyzer *Analyzer
	program  *ast.Program
	lines    map[int]bool // existing line numbers
	reached  mapset.Set // line numbers visited from line 1
}

func NewFlowAnalyzer(analyzer *Analyzer) *FlowAnalyzer {
	return &FlowAnalyzer{analyzer: analyzer}
}

// AnalyzeProgram walks fall-through, goto and conditional edges from line 1
// and reports every line left unvisited. Gotos to missing lines have no
// edge; code generation rejects them.
func (fa *FlowAnalyzer) AnalyzeProgram(program *ast.Program) {
	fa.program = program
	fa.lines = make(map[int]bool, len(program.Lines))
	fa.reached = mapset.NewSet()
	for _, line := range program.Lines {
		fa.lines[line.Number] = true
	}
	if len(program.Lines) == 0 {
		return
	}

	work := []int{program.Lines[0].Number}
	for len(work) > 0 {
		n := work[len(work)-1]
		work = work[:len(work)-1]
		if !fa.lines[n] || !fa.reached.Add(n) {
			continue
		}
		work = append(work, fa.successors(n, program.Line(n))...)
	}

	for _, line := range program.Lines {
		if !fa.reached.Contains(line.Number) {
			fa.analyzer.addCompilerError(errors.UnreachableCode(line.Number, line.Stmt.NodePos()))
		}
	}
}

// Reachable reports whether line n was reached by the last analysis
func (fa *FlowAnalyzer) Reachable(n int) bool {
	return fa.reached != nil && fa.reached.Contains(n)
}

func (fa *FlowAnalyzer) successors(n int, stmt ast.Stmt) []int {
	switch s := stmt.(type) {
	case *ast.Goto:
		return []int{s.Target}
	case *ast.Return:
		return nil
	case *ast.Conditional:
		return append([]int{n + 1}, fa.successors(n, s.Body)...)
	default:
		return []int{n + 1}
	}
}
