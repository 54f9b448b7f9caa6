package ast

import (
	"fmt"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder
	for _, line := range p.Lines {
		b.WriteString(fmt.Sprintf("%d: %s\n", line.Number, line.Stmt.String()))
	}
	return b.String()
}

func (n *Number) String() string {
	return fmt.Sprintf("%d", n.Value)
}

func (v *Variable) String() string {
	return fmt.Sprintf("v%d", v.Index)
}

func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op.String(), b.Right.String())
}

func (a *Assign) String() string {
	return fmt.Sprintf("v%d = %s", a.Index, a.Value.String())
}

func (p *Print) String() string {
	return "print " + p.Value.String()
}

func (p *PrintChar) String() string {
	return "printchar " + p.Value.String()
}

func (*PrintNewline) String() string {
	return "newline"
}

func (i *Input) String() string {
	return fmt.Sprintf("v%d = input", i.Index)
}

func (c *Conditional) String() string {
	return fmt.Sprintf("if v%d != 0: %s", c.Guard, c.Body.String())
}

func (g *Goto) String() string {
	return fmt.Sprintf("goto %d", g.Target)
}

func (r *Return) String() string {
	if r.Value == nil {
		return "return"
	}
	return "return " + r.Value.String()
}

func (b *BadStmt) String() string {
	return fmt.Sprintf("BadStmt: %s", b.Message)
}
