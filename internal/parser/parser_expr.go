package parser

import "umjunsik/internal/ast"

// parseExpr parses a run of terms. Adjacent terms add; a negative literal
// term subtracts its magnitude.
func (p *Parser) parseExpr() ast.Expr {
	left := p.parseTerm()
	if left == nil {
		return nil
	}

	for p.check(LITERAL) || p.check(VARIABLE) {
		tok := p.peek()
		right := p.parseTerm()
		if right == nil {
			return nil
		}

		op := ast.Add
		if n, ok := right.(*ast.Number); ok && n.Value < 0 {
			op = ast.Sub
			right = &ast.Number{Pos: n.Pos, Value: -n.Value}
		}
		left = &ast.BinaryOp{Pos: p.makePos(tok), Op: op, Left: left, Right: right}
	}

	return left
}

// parseTerm parses atoms joined by blanks, which multiply and bind tighter
// than juxtaposition.
func (p *Parser) parseTerm() ast.Expr {
	left := p.parseAtom()
	if left == nil {
		return nil
	}

	for p.check(STAR) {
		tok := p.advance()
		right := p.parseAtom()
		if right == nil {
			return nil
		}
		left = &ast.BinaryOp{Pos: p.makePos(tok), Op: ast.Mul, Left: left, Right: right}
	}

	return left
}

func (p *Parser) parseAtom() ast.Expr {
	switch {
	case p.check(LITERAL):
		tok := p.advance()
		return &ast.Number{Pos: p.makePos(tok), Value: tok.Value}
	case p.check(VARIABLE):
		tok := p.advance()
		return &ast.Variable{Pos: p.makePos(tok), Index: int(tok.Value)}
	default:
		p.errorAtCurrent(MalformedStatement, "expected expression", LITERAL, VARIABLE)
		return nil
	}
}

func foldConstant(expr ast.Expr) (int64, bool) {
	switch e := expr.(type) {
	case *ast.Number:
		return e.Value, true
	case *ast.BinaryOp:
		left, ok := foldConstant(e.Left)
		if !ok {
			return 0, false
		}
		right, ok := foldConstant(e.Right)
		if !ok {
			return 0, false
		}
		switch e.Op {
		case ast.Add:
			return left + right, true
		case ast.Sub:
			return left - right, true
		case ast.Mul:
			return left * right, true
		}
	}
	return 0, false
}
