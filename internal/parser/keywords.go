package parser

import "umjunsik/token"

var KEYWORDS = map[string]TokenType{
	token.START:       START,
	token.GOTO:        GOTO,
	token.CONSOLE:     CONSOLE,
	token.CONDITIONAL: CONDITIONAL,
	token.RETURN:      RETURN,
}

// Spelling returns the canonical source spelling of a token type, used in
// diagnostics that list expected tokens.
func Spelling(tt TokenType) string {
	switch tt {
	case START:
		return token.START
	case END:
		return token.END
	case GOTO:
		return token.GOTO
	case CONSOLE:
		return token.CONSOLE
	case CONDITIONAL:
		return token.CONDITIONAL
	case RETURN:
		return token.RETURN
	case QUESTION:
		return string(token.QUESTION)
	case BANG:
		return string(token.BANG)
	case KEK:
		return string(token.KEK)
	case NEWLINE:
		return "newline"
	case ASSIGN:
		return "assignment"
	case VARIABLE:
		return "variable"
	case LITERAL:
		return "literal"
	case EOF:
		return "end of input"
	default:
		return tt.String()
	}
}
