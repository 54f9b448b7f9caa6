package ast

// Line is one numbered statement. Numbers are 1-based and follow parse order.
type Line struct {
	Number int
	Stmt   Stmt
}

// Program is the ordered list of lines between the start and end keywords.
type Program struct {
	Lines []Line
}

// Line returns the statement numbered n, or nil.
func (p *Program) Line(n int) Stmt {
	if n < 1 || n > len(p.Lines) {
		return nil
	}
	return p.Lines[n-1].Stmt
}
