package grammar

import (
	"strings"
)

func (f *File) String() string {
	var b strings.Builder
	b.WriteString(f.Start + "\n")
	for _, line := range f.Lines {
		if line.Stmt != nil {
			b.WriteString(line.Stmt.String() + "\n")
		}
	}
	b.WriteString(f.End + "\n")
	return b.String()
}

func (s *Statement) String() string {
	switch {
	case s.Assign != nil:
		return s.Assign.String()
	case s.Console != nil:
		return s.Console.String()
	case s.Cond != nil:
		return s.Cond.String()
	case s.Goto != nil:
		return s.Goto.String()
	case s.Return != nil:
		return s.Return.String()
	}
	return ""
}

func (a *Assign) String() string {
	if a.Rest == nil {
		return a.Target
	}
	if a.Rest.Input {
		return a.Target + "식?"
	}
	return a.Target + normalizeExpr(a.Rest.Value)
}

func (c *Console) String() string {
	return "식" + normalizeExpr(c.Value) + c.Op
}

func (c *Conditional) String() string {
	return "동탄" + normalizeExpr(c.Guard) + "?" + c.Body.String()
}

func (g *Goto) String() string {
	return "준" + normalizeExpr(g.Target)
}

func (r *Return) String() string {
	if r.Value == nil {
		return r.Keyword
	}
	return r.Keyword + "!" + normalizeExpr(r.Value.Expr)
}

// normalizeExpr collapses every blank run to a single space
func normalizeExpr(expr string) string {
	return strings.Join(strings.Fields(expr), " ")
}
