package ast

type Node interface {
	NodePos() Position
	NodeType() NodeType
	String() string
}

// Expr is a value-producing node. All values are 64-bit integers.
type Expr interface {
	Node
	exprNode()
}

// Stmt is one statement of a program line.
type Stmt interface {
	Node
	stmtNode()
}

func (p *Program) NodePos() Position { return Position{Line: 1, Column: 1} }
func (*Program) NodeType() NodeType  { return PROGRAM }

func (n *Number) NodePos() Position { return n.Pos }
func (*Number) NodeType() NodeType  { return NUMBER_EXPR }

func (v *Variable) NodePos() Position { return v.Pos }
func (*Variable) NodeType() NodeType  { return VARIABLE_EXPR }

func (b *BinaryOp) NodePos() Position { return b.Pos }
func (*BinaryOp) NodeType() NodeType  { return BINARY_EXPR }

func (a *Assign) NodePos() Position { return a.Pos }
func (*Assign) NodeType() NodeType  { return ASSIGN_STMT }

func (p *Print) NodePos() Position { return p.Pos }
func (*Print) NodeType() NodeType  { return PRINT_STMT }

func (p *PrintChar) NodePos() Position { return p.Pos }
func (*PrintChar) NodeType() NodeType  { return PRINT_CHAR_STMT }

func (p *PrintNewline) NodePos() Position { return p.Pos }
func (*PrintNewline) NodeType() NodeType  { return PRINT_NEWLINE_STMT }

func (i *Input) NodePos() Position { return i.Pos }
func (*Input) NodeType() NodeType  { return INPUT_STMT }

func (c *Conditional) NodePos() Position { return c.Pos }
func (*Conditional) NodeType() NodeType  { return CONDITIONAL_STMT }

func (g *Goto) NodePos() Position { return g.Pos }
func (*Goto) NodeType() NodeType  { return GOTO_STMT }

func (r *Return) NodePos() Position { return r.Pos }
func (*Return) NodeType() NodeType  { return RETURN_STMT }

func (b *BadStmt) NodePos() Position { return b.Pos }
func (*BadStmt) NodeType() NodeType  { return BAD_STMT }

func (*Number) exprNode()   {}
func (*Variable) exprNode() {}
func (*BinaryOp) exprNode() {}

func (*Assign) stmtNode()       {}
func (*Print) stmtNode()        {}
func (*PrintChar) stmtNode()    {}
func (*PrintNewline) stmtNode() {}
func (*Input) stmtNode()        {}
func (*Conditional) stmtNode()  {}
func (*Goto) stmtNode()         {}
func (*Return) stmtNode()       {}
func (*BadStmt) stmtNode()      {}
