package lucid

// checkExpression attributes a semantic type to an expression. Failures are
// recorded and Unknown is returned so checking can continue.
func (c *checker) checkExpression(expr Expr) Type {
	switch e := expr.(type) {
	case *IntLiteral:
		return intType()
	case *FloatLiteral:
		return floatType()
	case *StringLiteral:
		return stringType()
	case *BoolLiteral:
		return boolType()
	case *Identifier:
		return c.checkIdentifier(e)
	case *TupleExpr:
		return c.checkTuple(e)
	case *ListExpr:
		return c.checkList(e)
	case *BinaryExpr:
		return c.checkBinary(e)
	case *UnaryExpr:
		return c.checkUnary(e)
	case *CallExpr:
		return c.checkCall(e)
	case *MethodCallExpr:
		return c.checkMethodCall(e)
	case *IndexExpr:
		return c.checkIndex(e)
	case *LambdaExpr:
		return c.checkLambda(e)
	case *IfExpr:
		return c.checkIf(e)
	case *BlockExpr:
		return c.checkBlock(e)
	}
	return unknownType()
}

func (c *checker) checkIdentifier(expr *Identifier) Type {
	sym := c.symbols.lookup(expr.Name)
	if sym == nil {
		c.errorf(expr.Pos(), "Undefined variable '%s'", expr.Name)
		return unknownType()
	}
	return sym.Type.Clone()
}

func (c *checker) checkTuple(expr *TupleExpr) Type {
	elems := make([]Type, len(expr.Elements))
	for i, elem := range expr.Elements {
		elems[i] = c.checkExpression(elem)
	}
	return &TupleType{Elements: elems}
}

func (c *checker) checkList(expr *ListExpr) Type {
	if len(expr.Elements) == 0 {
		return &ListType{Element: unknownType()}
	}

	first := c.checkExpression(expr.Elements[0])
	for _, elem := range expr.Elements[1:] {
		elemType := c.checkExpression(elem)
		c.expectType(elem.Pos(), first, elemType)
	}

	return &ListType{Element: first}
}

func (c *checker) checkBinary(expr *BinaryExpr) Type {
	switch expr.Operator {
	case tokenPlus, tokenMinus, tokenStar, tokenSlash, tokenPercent, tokenPower:
		return c.checkBinaryArithmetic(expr)
	case tokenEQ, tokenNotEQ, tokenLT, tokenGT, tokenLTE, tokenGTE:
		return c.checkBinaryComparison(expr)
	case tokenAnd, tokenOr:
		return c.checkBinaryLogical(expr)
	}
	return unknownType()
}

func isNumericType(t Type) bool {
	prim, ok := t.(*PrimitiveType)
	return ok && prim.IsNumeric()
}

func (c *checker) checkBinaryArithmetic(expr *BinaryExpr) Type {
	leftType := c.checkExpression(expr.Left)
	rightType := c.checkExpression(expr.Right)

	if !isNumericType(leftType) {
		c.errorf(expr.Left.Pos(), "Arithmetic operator requires numeric type, got '%s'", leftType)
		return unknownType()
	}
	if !isNumericType(rightType) {
		c.errorf(expr.Right.Pos(), "Arithmetic operator requires numeric type, got '%s'", rightType)
		return unknownType()
	}

	// Int op Int stays Int; any Float operand promotes the result to Float.
	if leftType.(*PrimitiveType).Primitive == PrimFloat ||
		rightType.(*PrimitiveType).Primitive == PrimFloat {
		return floatType()
	}
	return intType()
}

func (c *checker) checkBinaryComparison(expr *BinaryExpr) Type {
	leftType := c.checkExpression(expr.Left)
	rightType := c.checkExpression(expr.Right)

	switch expr.Operator {
	case tokenLT, tokenGT, tokenLTE, tokenGTE:
		if !isNumericType(leftType) || !isNumericType(rightType) {
			c.errorf(expr.Pos(), "Ordering comparison requires numeric types")
		}
	case tokenEQ, tokenNotEQ:
		c.expectType(expr.Right.Pos(), leftType, rightType)
	}

	return boolType()
}

func (c *checker) checkBinaryLogical(expr *BinaryExpr) Type {
	leftType := c.checkExpression(expr.Left)
	rightType := c.checkExpression(expr.Right)

	c.expectType(expr.Left.Pos(), boolType(), leftType)
	c.expectType(expr.Right.Pos(), boolType(), rightType)

	return boolType()
}

func (c *checker) checkUnary(expr *UnaryExpr) Type {
	switch expr.Operator {
	case tokenMinus, tokenPlus:
		operandType := c.checkExpression(expr.Operand)
		if !isNumericType(operandType) {
			c.errorf(expr.Operand.Pos(), "Unary arithmetic operator requires numeric type, got '%s'", operandType)
			return unknownType()
		}
		return operandType

	case tokenNot:
		operandType := c.checkExpression(expr.Operand)
		c.expectType(expr.Operand.Pos(), boolType(), operandType)
		return boolType()
	}
	return unknownType()
}

func (c *checker) checkIndex(expr *IndexExpr) Type {
	objectType := c.checkExpression(expr.Object)
	indexType := c.checkExpression(expr.Index)

	c.expectType(expr.Index.Pos(), intType(), indexType)

	switch obj := objectType.(type) {
	case *ListType:
		return obj.Element.Clone()

	case *TupleType:
		// Tuple element types differ per position, so the index must be a
		// literal the checker can resolve statically.
		lit, ok := expr.Index.(*IntLiteral)
		if !ok {
			c.errorf(expr.Pos(), "Tuple indexing requires a constant integer literal index")
			return unknownType()
		}
		if lit.Value < 0 || lit.Value >= int64(len(obj.Elements)) {
			c.errorf(expr.Index.Pos(), "Tuple index %d out of bounds (tuple has %d elements)",
				lit.Value, len(obj.Elements))
			return unknownType()
		}
		return obj.Elements[lit.Value].Clone()

	default:
		c.errorf(expr.Object.Pos(), "Cannot index into type '%s'", objectType)
		return unknownType()
	}
}

func (c *checker) checkLambda(expr *LambdaExpr) Type {
	c.symbols.enterScope(ScopeLambda)

	// Lambda parameters carry no annotations and no inference runs for them.
	params := make([]Type, len(expr.Parameters))
	for i, name := range expr.Parameters {
		params[i] = unknownType()
		c.symbols.declare(name, SymbolParameter, unknownType(), expr.Pos())
	}

	bodyType := c.checkExpression(expr.Body)

	c.symbols.exitScope()

	return &FunctionType{Params: params, Return: bodyType}
}

func (c *checker) checkIf(expr *IfExpr) Type {
	condType := c.checkExpression(expr.Condition)
	c.expectType(expr.Condition.Pos(), boolType(), condType)

	thenType := c.checkExpression(expr.Then)

	if expr.Else != nil {
		elseType := c.checkExpression(expr.Else)
		if isUnknown(thenType) || isUnknown(elseType) {
			return unknownType()
		}
		if !thenType.Equals(elseType) {
			c.errorf(expr.Else.Pos(), "If expression branches have incompatible types: '%s' and '%s'",
				thenType, elseType)
			return unknownType()
		}
	}

	return thenType
}

func (c *checker) checkBlock(expr *BlockExpr) Type {
	c.symbols.enterScope(ScopeBlock)
	defer c.symbols.exitScope()

	if len(expr.Statements) == 0 {
		return unknownType()
	}

	for _, stmt := range expr.Statements[:len(expr.Statements)-1] {
		c.checkStatement(stmt)
	}

	// A trailing expression statement gives the block its value type;
	// otherwise the block has Unit type (Unknown stands in for Unit).
	last := expr.Statements[len(expr.Statements)-1]
	if exprStmt, ok := last.(*ExprStmt); ok {
		return c.checkExpression(exprStmt.Expr)
	}
	c.checkStatement(last)
	return unknownType()
}
