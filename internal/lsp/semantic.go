package lsp

import (
	"fmt"
	"strings"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"umjunsik/internal/parser"
	"umjunsik/token"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

const (
	tokenKeyword = iota
	tokenVariable
	tokenNumber
	tokenOperator
)

const modifierDeclaration = 1 << 0

func collectSemanticTokens(tokens []parser.Token) []SemanticToken {
	var out []SemanticToken

	for _, tok := range tokens {
		var kind, modifiers int
		switch tok.Type {
		case parser.START, parser.END, parser.GOTO, parser.CONSOLE, parser.CONDITIONAL, parser.RETURN:
			kind = tokenKeyword
		case parser.ASSIGN:
			kind, modifiers = tokenVariable, modifierDeclaration
		case parser.VARIABLE:
			kind = tokenVariable
		case parser.LITERAL:
			kind = tokenNumber
		case parser.QUESTION, parser.BANG, parser.KEK:
			kind = tokenOperator
		default:
			continue
		}

		out = append(out, SemanticToken{
			Line:           uint32(tok.Position.Line - 1),
			StartChar:      uint32(tok.Position.Column - 1),
			Length:         uint32(utf8.RuneCountInString(tok.Lexeme)),
			TokenType:      kind,
			TokenModifiers: modifiers,
		})
	}

	return out
}

// encodeSemanticTokens produces the LSP wire format (delta-line, delta-start compression)
func encodeSemanticTokens(tokens []SemanticToken) []protocol.UInteger {
	data := make([]protocol.UInteger, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, tok := range tokens {
		deltaLine := tok.Line - prevLine
		deltaStart := tok.StartChar
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, tok.Length, uint32(tok.TokenType), uint32(tok.TokenModifiers))

		prevLine = tok.Line
		prevStart = tok.StartChar
	}

	return data
}

// tokenAt finds the token covering pos
func tokenAt(tokens []parser.Token, pos protocol.Position) (parser.Token, bool) {
	for _, tok := range tokens {
		if tok.Type == parser.EOF || tok.Type == parser.NEWLINE || tok.Type == parser.STAR {
			continue
		}
		if uint32(tok.Position.Line-1) != pos.Line {
			continue
		}
		start := uint32(tok.Position.Column - 1)
		end := start + uint32(utf8.RuneCountInString(tok.Lexeme))
		if pos.Character >= start && pos.Character < end {
			return tok, true
		}
	}
	return parser.Token{}, false
}

func tokenRange(tok parser.Token) protocol.Range {
	line := uint32(tok.Position.Line - 1)
	start := uint32(tok.Position.Column - 1)
	return protocol.Range{
		Start: protocol.Position{Line: line, Character: start},
		End:   protocol.Position{Line: line, Character: start + uint32(utf8.RuneCountInString(tok.Lexeme))},
	}
}

// describeToken renders hover text. slots maps variable index to slot id
// and is nil when the document did not compile.
func describeToken(tok parser.Token, slots map[int]int) string {
	switch tok.Type {
	case parser.ASSIGN, parser.VARIABLE:
		verb := "read"
		if tok.Type == parser.ASSIGN {
			verb = "assign"
		}
		index := int(tok.Value)

		var b strings.Builder
		fmt.Fprintf(&b, "**%s** variable `v%d`", verb, index)
		if slot, ok := slots[index]; ok {
			fmt.Fprintf(&b, "\n\nstack slot `%%v%d`", slot)
		} else if slots != nil {
			b.WriteString("\n\nnot allocated")
		}
		return b.String()
	case parser.LITERAL:
		return fmt.Sprintf("literal `%d`", tok.Value)
	case parser.END:
		return token.Describe(token.END)
	case parser.START, parser.GOTO, parser.CONSOLE, parser.CONDITIONAL, parser.RETURN:
		return token.Describe(tok.Lexeme)
	}
	return ""
}
