package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var UmjunsikLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Program delimiters
		{Name: "Start", Pattern: `어떻게`, Action: nil},
		{Name: "End", Pattern: `이 사람이름이냐ㅋ*`, Action: nil},

		// Assignment target (must come before Expr)
		{Name: "Assign", Pattern: `어*엄`, Action: nil},

		// A whole expression: operand runs, blanks between operands multiply
		{Name: "Expr", Pattern: `(?:어+|[.,]+)+(?:[ \t\r]+(?:어+|[.,]+)+)*`, Action: nil},

		// Keywords
		{Name: "Keyword", Pattern: `준|식|동탄|화이팅`, Action: nil},

		// Punctuation
		{Name: "Punct", Pattern: `[?!ㅋ]`, Action: nil},

		// Statement separators
		{Name: "EOL", Pattern: `[\n~]`, Action: nil},

		// Whitespace
		{Name: "Blank", Pattern: `[ \t\r]+`, Action: nil},
	},
})
