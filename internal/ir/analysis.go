package ir

import (
	"fmt"

	"umjunsik/internal/ast"
)

// SlotTable maps variable indices to slot ids in order of first occurrence.
type SlotTable struct {
	order []int
	ids   map[int]int
}

// AnalyzeSlots records every variable index the program touches: assignment
// and input targets, reads, and conditional guards. Targets are visited
// before the expression assigned to them.
func AnalyzeSlots(program *ast.Program) *SlotTable {
	t := &SlotTable{ids: make(map[int]int)}
	for _, line := range program.Lines {
		t.visitStmt(line.Stmt)
	}
	return t
}

func (t *SlotTable) Lookup(index int) (int, bool) {
	id, ok := t.ids[index]
	return id, ok
}

func (t *SlotTable) Len() int {
	return len(t.order)
}

// Indices returns variable indices ordered by slot id.
func (t *SlotTable) Indices() []int {
	return append([]int(nil), t.order...)
}

func (t *SlotTable) use(index int) {
	if _, ok := t.ids[index]; ok {
		return
	}
	t.ids[index] = len(t.order)
	t.order = append(t.order, index)
}

func (t *SlotTable) visitStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Assign:
		t.use(s.Index)
		t.visitExpr(s.Value)
	case *ast.Input:
		t.use(s.Index)
	case *ast.Print:
		t.visitExpr(s.Value)
	case *ast.PrintChar:
		t.visitExpr(s.Value)
	case *ast.Conditional:
		t.use(s.Guard)
		t.visitStmt(s.Body)
	case *ast.Return:
		if s.Value != nil {
			t.visitExpr(s.Value)
		}
	}
}

func (t *SlotTable) visitExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		t.use(e.Index)
	case *ast.BinaryOp:
		t.visitExpr(e.Left)
		t.visitExpr(e.Right)
	}
}

const exitLabel = "exit"

// labelTable holds the block of every program line, created before any
// instruction is emitted so forward and backward jumps need no patching.
type labelTable struct {
	lines map[int]*BasicBlock
	exit  *BasicBlock
}

func resolveLabels(program *ast.Program) *labelTable {
	labels := &labelTable{lines: make(map[int]*BasicBlock, len(program.Lines))}
	for _, line := range program.Lines {
		labels.lines[line.Number] = &BasicBlock{Label: fmt.Sprintf("line_%d", line.Number)}
	}

	// A conditional on the last line falls through past the program.
	if n := len(program.Lines); n > 0 {
		if _, ok := program.Lines[n-1].Stmt.(*ast.Conditional); ok {
			labels.exit = &BasicBlock{Label: exitLabel}
		}
	}
	return labels
}

// successor returns the block control reaches after the line at position i
// falls through, or nil when the line is the last one without an exit block.
func (l *labelTable) successor(program *ast.Program, i int) *BasicBlock {
	if i+1 < len(program.Lines) {
		return l.lines[program.Lines[i+1].Number]
	}
	return l.exit
}
