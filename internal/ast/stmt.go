package ast

// Assign stores Value into the variable Index.
type Assign struct {
	Pos   Position
	Index int
	Value Expr
}

// Print writes Value in decimal.
type Print struct {
	Pos   Position
	Value Expr
}

// PrintChar writes Value as a single character.
type PrintChar struct {
	Pos   Position
	Value Expr
}

// PrintNewline writes a line feed.
type PrintNewline struct {
	Pos Position
}

// Input reads console input into variable Index. Console input is not
// supported by the backend; the statement lowers to a placeholder.
type Input struct {
	Pos   Position
	Index int
}

// Conditional runs Body when the variable Guard holds a non-zero value.
// Body is always a single statement.
type Conditional struct {
	Pos   Position
	Guard int
	Body  Stmt
}

// Goto transfers control to the program line Target. Targets are resolved
// by the code generator, not the parser.
type Goto struct {
	Pos    Position
	Target int
}

// Return exits main. A nil Value returns zero.
type Return struct {
	Pos   Position
	Value Expr
}

// BadStmt stands in for a statement that failed to parse.
type BadStmt struct {
	Pos     Position
	Message string
}
