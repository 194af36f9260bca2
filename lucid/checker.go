package lucid

import "fmt"

// TypeCheckResult collects every diagnostic produced while checking a
// program. The checker never short-circuits: a failing expression yields
// Unknown and checking continues.
type TypeCheckResult struct {
	Errors []Diagnostic
}

// Ok reports whether the program type checked cleanly.
func (r *TypeCheckResult) Ok() bool {
	return len(r.Errors) == 0
}

// checker attributes semantic types to the tree. The struct is the explicit
// checking state: the symbol table, the builtin type environment, and the
// return type of the function currently being checked.
type checker struct {
	symbols       *symbolTable
	typeEnv       *typeEnvironment
	currentReturn Type
	result        TypeCheckResult
}

func newChecker() *checker {
	return &checker{symbols: newSymbolTable(), typeEnv: newTypeEnvironment()}
}

// typecheck runs both checker passes over a parsed program.
func typecheck(program *Program) *TypeCheckResult {
	c := newChecker()
	return c.checkProgram(program)
}

func (c *checker) checkProgram(program *Program) *TypeCheckResult {
	// Pass 1: declare every function signature in the global scope so bodies
	// can call forward.
	for _, fn := range program.Functions {
		params := make([]Type, len(fn.Parameters))
		for i, param := range fn.Parameters {
			params[i] = c.typeFromAnnotation(param.Type)
		}
		returnType := c.typeFromAnnotation(fn.ReturnType)

		fnType := &FunctionType{Params: params, Return: returnType}
		if !c.symbols.declare(fn.Name, SymbolFunction, fnType, fn.Pos()) {
			c.errorf(fn.Pos(), "Function '%s' is already declared", fn.Name)
		}
	}

	// Pass 2: check bodies.
	for _, fn := range program.Functions {
		c.checkFunction(fn)
	}

	return &c.result
}

func (c *checker) checkFunction(fn *FunctionDef) {
	c.symbols.enterScope(ScopeFunction)
	c.currentReturn = c.typeFromAnnotation(fn.ReturnType)

	for _, param := range fn.Parameters {
		paramType := c.typeFromAnnotation(param.Type)
		if !c.symbols.declare(param.Name, SymbolParameter, paramType, param.Pos()) {
			c.errorf(param.Pos(), "Parameter '%s' is already declared", param.Name)
		}
	}

	// Return statements are validated individually against the declared
	// return type; the body's own value type is not compared here.
	c.checkExpression(fn.Body)

	c.symbols.exitScope()
	c.currentReturn = nil
}

func (c *checker) checkStatement(stmt Stmt) {
	switch s := stmt.(type) {
	case *LetStmt:
		c.checkLet(s)
	case *ReturnStmt:
		c.checkReturn(s)
	case *ExprStmt:
		c.checkExpression(s.Expr)
	}
}

func (c *checker) checkLet(stmt *LetStmt) {
	initType := c.checkExpression(stmt.Initializer)

	if stmt.Type != nil {
		declared := c.typeFromAnnotation(stmt.Type)
		if !initType.Equals(declared) {
			c.expectType(stmt.Initializer.Pos(), declared, initType)
			// The annotation wins for error recovery.
			initType = declared
		}
	}

	c.checkPattern(stmt.Pattern, initType)
}

func (c *checker) checkReturn(stmt *ReturnStmt) {
	if c.currentReturn == nil {
		c.errorf(stmt.Pos(), "Return statement outside of function")
		return
	}

	returnType := c.checkExpression(stmt.Value)
	c.expectType(stmt.Value.Pos(), c.currentReturn, returnType)
}

func (c *checker) checkPattern(pattern Pattern, expected Type) {
	switch p := pattern.(type) {
	case *IdentifierPattern:
		if !c.symbols.declare(p.Name, SymbolVariable, expected.Clone(), p.Pos()) {
			c.errorf(p.Pos(), "Variable '%s' is already declared in this scope", p.Name)
		}

	case *TuplePattern:
		tupleType, ok := expected.(*TupleType)
		if !ok {
			c.errorf(p.Pos(), "Cannot destructure non-tuple type '%s' with tuple pattern", expected)
			return
		}

		if len(p.Elements) != len(tupleType.Elements) {
			c.errorf(p.Pos(), "Tuple pattern has %d elements but type has %d elements",
				len(p.Elements), len(tupleType.Elements))
			return
		}

		for i, elem := range p.Elements {
			c.checkPattern(elem, tupleType.Elements[i])
		}
	}
}

// ===== Helpers =====

func (c *checker) errorf(loc Position, format string, args ...any) {
	c.result.Errors = append(c.result.Errors, Diagnostic{
		Phase:    PhaseType,
		Location: loc,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (c *checker) typeMismatch(loc Position, expected, actual Type) {
	c.errorf(loc, "Type mismatch: expected '%s', got '%s'", expected, actual)
}

func isUnknown(t Type) bool {
	return t.Kind() == KindUnknown
}

// expectType reports a mismatch unless the types are equal or either side is
// Unknown. Unknown is the recovery sentinel: the failure that produced it
// was already reported, so it must not cascade.
func (c *checker) expectType(loc Position, expected, actual Type) {
	if isUnknown(expected) || isUnknown(actual) {
		return
	}
	if !actual.Equals(expected) {
		c.typeMismatch(loc, expected, actual)
	}
}

func (c *checker) typeFromAnnotation(t TypeExpr) Type {
	switch ann := t.(type) {
	case *NamedTypeExpr:
		if builtin, ok := c.typeEnv.getBuiltin(ann.Name); ok {
			return builtin
		}
		// User-defined named types are not supported yet.
		return unknownType()
	case *ListTypeExpr:
		return &ListType{Element: c.typeFromAnnotation(ann.Element)}
	case *TupleTypeExpr:
		elems := make([]Type, len(ann.Elements))
		for i, elem := range ann.Elements {
			elems[i] = c.typeFromAnnotation(elem)
		}
		return &TupleType{Elements: elems}
	}
	return unknownType()
}
