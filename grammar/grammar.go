package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// File is a whole program. Expressions are kept as opaque runs; the
// compiler's own parser in internal/parser gives them meaning.
type File struct {
	Pos    lexer.Position
	Header []string `parser:"@EOL*"`
	Start  string   `parser:"@Start"`
	Lines  []*Line  `parser:"@@*"`
	End    string   `parser:"@End"`
	Tail   []string `parser:"@EOL*"`
}

type Line struct {
	Break bool       `parser:"  @EOL"`
	Stmt  *Statement `parser:"| @@ ( EOL | (?= End) )"`
}

type Statement struct {
	Pos     lexer.Position
	Assign  *Assign      `parser:"  @@"`
	Console *Console     `parser:"| @@"`
	Cond    *Conditional `parser:"| @@"`
	Goto    *Goto        `parser:"| @@"`
	Return  *Return      `parser:"| @@"`
}

type Assign struct {
	Target string      `parser:"@Assign"`
	Rest   *AssignRest `parser:"@@?"`
}

type AssignRest struct {
	Input bool   `parser:"  @(\"식\" \"?\")"`
	Value string `parser:"| @Expr"`
}

type Console struct {
	Value string `parser:"\"식\" @Expr?"`
	Op    string `parser:"@(\"!\" | \"ㅋ\")"`
}

type Conditional struct {
	Guard string     `parser:"\"동탄\" @Expr \"?\""`
	Body  *Statement `parser:"@@"`
}

type Goto struct {
	Target string `parser:"\"준\" @Expr"`
}

type Return struct {
	Keyword string       `parser:"@\"화이팅\""`
	Value   *ReturnValue `parser:"@@?"`
}

type ReturnValue struct {
	Expr string `parser:"\"!\" @Expr?"`
}
