package parser

import (
	"fmt"

	"umjunsik/internal/ast"
	"umjunsik/token"
)

func (p *Parser) parseStatement() ast.Stmt {
	switch p.peek().Type {
	case ASSIGN:
		return p.parseAssign()
	case CONSOLE:
		return p.parseConsole()
	case CONDITIONAL:
		return p.parseConditional()
	case GOTO:
		return p.parseGoto()
	case RETURN:
		return p.parseReturn()
	default:
		return p.badStmt("expected statement", ASSIGN, CONSOLE, CONDITIONAL, GOTO, RETURN)
	}
}

// parseAssign handles `어…엄 expr`, a bare `어…엄` (assigns zero) and
// `어…엄식?` (console input).
func (p *Parser) parseAssign() ast.Stmt {
	tok := p.advance()
	index := int(tok.Value)

	if p.match(CONSOLE) {
		if !p.match(QUESTION) {
			return p.badStmt("expected '?' after console input", QUESTION)
		}
		return &ast.Input{Pos: p.makePos(tok), Index: index}
	}

	if p.atStatementEnd() {
		return &ast.Assign{
			Pos:   p.makePos(tok),
			Index: index,
			Value: &ast.Number{Pos: p.makePos(tok), Value: 0},
		}
	}

	value := p.parseExpr()
	if value == nil {
		return p.badStmt("invalid assignment value")
	}
	return &ast.Assign{Pos: p.makePos(tok), Index: index, Value: value}
}

// parseConsole handles `식ㅋ`, `식 expr!` and `식 expr ㅋ`.
func (p *Parser) parseConsole() ast.Stmt {
	tok := p.advance()

	if p.match(KEK) {
		return &ast.PrintNewline{Pos: p.makePos(tok)}
	}

	value := p.parseExpr()
	if value == nil {
		return p.badStmt("invalid console expression")
	}

	switch {
	case p.match(BANG):
		return &ast.Print{Pos: p.makePos(tok), Value: value}
	case p.match(KEK):
		return &ast.PrintChar{Pos: p.makePos(tok), Value: value}
	default:
		return p.badStmt("expected console operator", BANG, KEK)
	}
}

// parseConditional handles `동탄 variable? statement`. The body is exactly
// one statement on the same line.
func (p *Parser) parseConditional() ast.Stmt {
	tok := p.advance()

	if !p.check(VARIABLE) {
		return p.badStmt(fmt.Sprintf("expected variable after %s", token.CONDITIONAL), VARIABLE)
	}
	guard := p.advance()

	if !p.match(QUESTION) {
		return p.badStmt("expected '?' after conditional guard", QUESTION)
	}

	if p.atStatementEnd() {
		return p.badStmt("expected statement after '?'", ASSIGN, CONSOLE, CONDITIONAL, GOTO, RETURN)
	}

	body := p.parseStatement()
	if _, bad := body.(*ast.BadStmt); bad {
		return body
	}

	return &ast.Conditional{
		Pos:   p.makePos(tok),
		Guard: int(guard.Value),
		Body:  body,
	}
}

// parseGoto handles `준 expr`. The target is folded to a constant here;
// whether the line exists is checked during code generation.
func (p *Parser) parseGoto() ast.Stmt {
	tok := p.advance()

	targetTok := p.peek()
	target := p.parseExpr()
	if target == nil {
		return p.badStmt("invalid goto target")
	}

	line, ok := foldConstant(target)
	if !ok {
		p.errorAt(targetTok, NonConstantGoto, "goto target must not read variables")
		return &ast.BadStmt{Pos: p.makePos(targetTok), Message: "goto target must not read variables"}
	}

	return &ast.Goto{Pos: p.makePos(tok), Target: int(line)}
}

// parseReturn handles `화이팅` and `화이팅!expr`.
func (p *Parser) parseReturn() ast.Stmt {
	tok := p.advance()
	ret := &ast.Return{Pos: p.makePos(tok)}

	if p.match(BANG) && !p.atStatementEnd() {
		ret.Value = p.parseExpr()
		if ret.Value == nil {
			return p.badStmt("invalid return value")
		}
	}

	return ret
}

func (p *Parser) atStatementEnd() bool {
	return p.isAtEnd() || p.check(NEWLINE) || p.check(END)
}

// badStmt records an error at the current token unless the expression
// parser already reported one for this statement.
func (p *Parser) badStmt(message string, expected ...TokenType) *ast.BadStmt {
	tok := p.peek()
	if !p.reportedAt(tok) {
		p.errorAtCurrent(MalformedStatement, message, expected...)
	}
	return &ast.BadStmt{Pos: p.makePos(tok), Message: message}
}
