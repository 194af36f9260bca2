package lucid

func (p *parser) parseType() TypeExpr {
	startPos := p.peek().Pos

	switch p.peek().Type {
	case tokenTypeInt:
		p.advance()
		return &NamedTypeExpr{Name: "Int", position: startPos}
	case tokenTypeFloat:
		p.advance()
		return &NamedTypeExpr{Name: "Float", position: startPos}
	case tokenTypeString:
		p.advance()
		return &NamedTypeExpr{Name: "String", position: startPos}
	case tokenTypeBool:
		p.advance()
		return &NamedTypeExpr{Name: "Bool", position: startPos}
	case tokenTypeList:
		p.advance()
		if !p.expect(tokenLBracket, "Expected '[' after 'List'") {
			return nil
		}
		elem := p.parseType()
		if elem == nil {
			return nil
		}
		if !p.expect(tokenRBracket, "Expected ']' after list element type") {
			return nil
		}
		return &ListTypeExpr{Element: elem, position: startPos}
	}

	if p.check(tokenIdent) {
		name := p.advance().Literal

		// IDENT[T] currently collapses to List[T]; a future generic syntax
		// would give the name its own node.
		if p.match(tokenLBracket) {
			elem := p.parseType()
			if elem == nil {
				return nil
			}
			if !p.expect(tokenRBracket, "Expected ']' after type parameter") {
				return nil
			}
			return &ListTypeExpr{Element: elem, position: startPos}
		}

		return &NamedTypeExpr{Name: name, position: startPos}
	}

	if p.match(tokenLParen) {
		var elements []TypeExpr

		if p.match(tokenRParen) {
			return &TupleTypeExpr{Elements: elements, position: startPos}
		}

		for {
			typ := p.parseType()
			if typ == nil {
				return nil
			}
			elements = append(elements, typ)
			if !p.match(tokenComma) {
				break
			}
		}

		if !p.expect(tokenRParen, "Expected ')' after tuple type") {
			return nil
		}

		return &TupleTypeExpr{Elements: elements, position: startPos}
	}

	p.error("Expected type")
	return nil
}
