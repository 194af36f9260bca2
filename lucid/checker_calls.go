package lucid

func (c *checker) checkCall(expr *CallExpr) Type {
	// Only direct calls through a function name are supported.
	ident, ok := expr.Callee.(*Identifier)
	if !ok {
		c.errorf(expr.Pos(), "Only function names can be called for now")
		return unknownType()
	}
	name := ident.Name

	switch name {
	case "print", "println":
		// Any single value; Int stands in for Unit.
		if len(expr.Args) != 1 {
			c.errorf(expr.Pos(), "Function '%s' expects 1 argument, got %d", name, len(expr.Args))
			return unknownType()
		}
		c.checkExpression(expr.Args[0])
		return intType()

	case "to_string":
		if len(expr.Args) != 1 {
			c.errorf(expr.Pos(), "Function 'to_string' expects 1 argument, got %d", len(expr.Args))
			return unknownType()
		}
		c.checkExpression(expr.Args[0])
		return stringType()

	case "read_file":
		if len(expr.Args) != 1 {
			c.errorf(expr.Pos(), "Function 'read_file' expects 1 argument, got %d", len(expr.Args))
			return unknownType()
		}
		c.checkStringArg(expr.Args[0])
		return stringType()

	case "write_file", "append_file":
		if len(expr.Args) != 2 {
			c.errorf(expr.Pos(), "Function '%s' expects 2 arguments, got %d", name, len(expr.Args))
			return unknownType()
		}
		c.checkStringArg(expr.Args[0])
		c.checkStringArg(expr.Args[1])
		return boolType()

	case "file_exists":
		if len(expr.Args) != 1 {
			c.errorf(expr.Pos(), "Function 'file_exists' expects 1 argument, got %d", len(expr.Args))
			return unknownType()
		}
		c.checkStringArg(expr.Args[0])
		return boolType()
	}

	sym := c.symbols.lookup(name)
	if sym == nil {
		c.errorf(expr.Pos(), "Undefined function '%s'", name)
		return unknownType()
	}

	fnType, ok := sym.Type.(*FunctionType)
	if !ok {
		c.errorf(expr.Pos(), "'%s' is not a function", name)
		return unknownType()
	}

	if len(expr.Args) != len(fnType.Params) {
		c.errorf(expr.Pos(), "Function '%s' expects %d arguments, got %d",
			name, len(fnType.Params), len(expr.Args))
		return unknownType()
	}

	for i, arg := range expr.Args {
		argType := c.checkExpression(arg)
		c.expectType(arg.Pos(), fnType.Params[i], argType)
	}

	return fnType.Return.Clone()
}

func (c *checker) checkStringArg(arg Expr) {
	argType := c.checkExpression(arg)
	c.expectType(arg.Pos(), stringType(), argType)
}

// checkMethodCall dispatches on the receiver's semantic type. Each receiver
// kind has a fixed method table with statically known result types.
func (c *checker) checkMethodCall(expr *MethodCallExpr) Type {
	receiverType := c.checkExpression(expr.Receiver)

	argTypes := make([]Type, len(expr.Args))
	for i, arg := range expr.Args {
		argTypes[i] = c.checkExpression(arg)
	}

	switch recv := receiverType.(type) {
	case *ListType:
		return c.checkListMethod(expr, recv, argTypes)
	case *TupleType:
		return c.checkTupleMethod(expr, argTypes)
	case *PrimitiveType:
		switch recv.Primitive {
		case PrimString:
			return c.checkStringMethod(expr, argTypes)
		case PrimInt:
			return c.checkIntMethod(expr, argTypes)
		case PrimFloat:
			return c.checkFloatMethod(expr, argTypes)
		}
	}

	c.errorf(expr.Pos(), "Type '%s' has no methods", receiverType)
	return unknownType()
}

func (c *checker) checkArity(expr *MethodCallExpr, want int) bool {
	if len(expr.Args) != want {
		if want == 1 {
			c.errorf(expr.Pos(), "Method '%s' expects 1 argument, got %d", expr.Method, len(expr.Args))
		} else {
			c.errorf(expr.Pos(), "Method '%s' expects %d arguments, got %d", expr.Method, want, len(expr.Args))
		}
		return false
	}
	return true
}

func (c *checker) checkListMethod(expr *MethodCallExpr, recv *ListType, argTypes []Type) Type {
	switch expr.Method {
	case "length":
		if !c.checkArity(expr, 0) {
			return unknownType()
		}
		return intType()

	case "append":
		if !c.checkArity(expr, 1) {
			return unknownType()
		}
		c.expectType(expr.Args[0].Pos(), recv.Element, argTypes[0])
		return recv.Clone()

	case "head":
		if !c.checkArity(expr, 0) {
			return unknownType()
		}
		return recv.Element.Clone()

	case "tail":
		if !c.checkArity(expr, 0) {
			return unknownType()
		}
		return recv.Clone()

	case "is_empty":
		if !c.checkArity(expr, 0) {
			return unknownType()
		}
		return boolType()

	case "reverse":
		if !c.checkArity(expr, 0) {
			return unknownType()
		}
		return recv.Clone()

	case "concat":
		if !c.checkArity(expr, 1) {
			return unknownType()
		}
		if !isUnknown(argTypes[0]) && !argTypes[0].Equals(recv) {
			c.errorf(expr.Args[0].Pos(), "Method 'concat' expects List argument, got '%s'", argTypes[0])
		}
		return recv.Clone()
	}

	c.errorf(expr.Pos(), "List type has no method '%s'", expr.Method)
	return unknownType()
}

func (c *checker) checkTupleMethod(expr *MethodCallExpr, argTypes []Type) Type {
	if expr.Method == "length" {
		if !c.checkArity(expr, 0) {
			return unknownType()
		}
		return intType()
	}

	c.errorf(expr.Pos(), "Tuple type has no method '%s'", expr.Method)
	return unknownType()
}

func (c *checker) checkStringMethod(expr *MethodCallExpr, argTypes []Type) Type {
	switch expr.Method {
	case "length":
		if !c.checkArity(expr, 0) {
			return unknownType()
		}
		return intType()

	case "is_empty":
		if !c.checkArity(expr, 0) {
			return unknownType()
		}
		return boolType()

	case "contains", "starts_with", "ends_with":
		if !c.checkArity(expr, 1) {
			return unknownType()
		}
		c.expectType(expr.Args[0].Pos(), stringType(), argTypes[0])
		return boolType()

	case "to_upper", "to_lower", "trim":
		if !c.checkArity(expr, 0) {
			return unknownType()
		}
		return stringType()
	}

	c.errorf(expr.Pos(), "String type has no method '%s'", expr.Method)
	return unknownType()
}

func (c *checker) checkIntMethod(expr *MethodCallExpr, argTypes []Type) Type {
	switch expr.Method {
	case "to_string":
		if !c.checkArity(expr, 0) {
			return unknownType()
		}
		return stringType()

	case "abs":
		if !c.checkArity(expr, 0) {
			return unknownType()
		}
		return intType()
	}

	c.errorf(expr.Pos(), "Int type has no method '%s'", expr.Method)
	return unknownType()
}

func (c *checker) checkFloatMethod(expr *MethodCallExpr, argTypes []Type) Type {
	switch expr.Method {
	case "to_string":
		if !c.checkArity(expr, 0) {
			return unknownType()
		}
		return stringType()

	case "abs":
		if !c.checkArity(expr, 0) {
			return unknownType()
		}
		return floatType()

	case "floor", "ceil", "round":
		if !c.checkArity(expr, 0) {
			return unknownType()
		}
		return intType()
	}

	c.errorf(expr.Pos(), "Float type has no method '%s'", expr.Method)
	return unknownType()
}
