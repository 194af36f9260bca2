package lucid

// Node is implemented by every element of the syntax tree.
type Node interface {
	Pos() Position
}

// Stmt is a statement inside a block.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression; blocks, ifs, and lambdas are expressions too.
type Expr interface {
	Node
	exprNode()
}

// Pattern is a binding form on the left side of let.
type Pattern interface {
	Node
	patternNode()
}

// TypeExpr is a syntactic type annotation.
type TypeExpr interface {
	Node
	typeNode()
}

// Program is the root of the syntax tree: a sequence of function definitions.
type Program struct {
	Functions []*FunctionDef
	position  Position
}

func (p *Program) Pos() Position { return p.position }

type FunctionDef struct {
	Name       string
	Parameters []*Parameter
	ReturnType TypeExpr
	Body       *BlockExpr
	position   Position
}

func (f *FunctionDef) Pos() Position { return f.position }

type Parameter struct {
	Name     string
	Type     TypeExpr
	position Position
}

func (p *Parameter) Pos() Position { return p.position }

// ===== Expressions =====

type IntLiteral struct {
	Value    int64
	position Position
}

func (e *IntLiteral) exprNode()     {}
func (e *IntLiteral) Pos() Position { return e.position }

type FloatLiteral struct {
	Value    float64
	position Position
}

func (e *FloatLiteral) exprNode()     {}
func (e *FloatLiteral) Pos() Position { return e.position }

type StringLiteral struct {
	Value    string
	position Position
}

func (e *StringLiteral) exprNode()     {}
func (e *StringLiteral) Pos() Position { return e.position }

type BoolLiteral struct {
	Value    bool
	position Position
}

func (e *BoolLiteral) exprNode()     {}
func (e *BoolLiteral) Pos() Position { return e.position }

type Identifier struct {
	Name     string
	position Position
}

func (e *Identifier) exprNode()     {}
func (e *Identifier) Pos() Position { return e.position }

type TupleExpr struct {
	Elements []Expr
	position Position
}

func (e *TupleExpr) exprNode()     {}
func (e *TupleExpr) Pos() Position { return e.position }

type ListExpr struct {
	Elements []Expr
	position Position
}

func (e *ListExpr) exprNode()     {}
func (e *ListExpr) Pos() Position { return e.position }

type BinaryExpr struct {
	Operator TokenType
	Left     Expr
	Right    Expr
	position Position
}

func (e *BinaryExpr) exprNode()     {}
func (e *BinaryExpr) Pos() Position { return e.position }

type UnaryExpr struct {
	Operator TokenType
	Operand  Expr
	position Position
}

func (e *UnaryExpr) exprNode()     {}
func (e *UnaryExpr) Pos() Position { return e.position }

type CallExpr struct {
	Callee   Expr
	Args     []Expr
	position Position
}

func (e *CallExpr) exprNode()     {}
func (e *CallExpr) Pos() Position { return e.position }

type MethodCallExpr struct {
	Receiver Expr
	Method   string
	Args     []Expr
	position Position
}

func (e *MethodCallExpr) exprNode()     {}
func (e *MethodCallExpr) Pos() Position { return e.position }

type IndexExpr struct {
	Object   Expr
	Index    Expr
	position Position
}

func (e *IndexExpr) exprNode()     {}
func (e *IndexExpr) Pos() Position { return e.position }

type LambdaExpr struct {
	Parameters []string
	Body       Expr
	position   Position
}

func (e *LambdaExpr) exprNode()     {}
func (e *LambdaExpr) Pos() Position { return e.position }

type IfExpr struct {
	Condition Expr
	Then      *BlockExpr
	Else      Expr // nil, *BlockExpr, or a nested *IfExpr
	position  Position
}

func (e *IfExpr) exprNode()     {}
func (e *IfExpr) Pos() Position { return e.position }

type BlockExpr struct {
	Statements []Stmt
	position   Position
}

func (e *BlockExpr) exprNode()     {}
func (e *BlockExpr) Pos() Position { return e.position }

// ===== Statements =====

type LetStmt struct {
	Pattern     Pattern
	Type        TypeExpr // nil when no annotation
	Initializer Expr
	position    Position
}

func (s *LetStmt) stmtNode()     {}
func (s *LetStmt) Pos() Position { return s.position }

type ReturnStmt struct {
	Value    Expr
	position Position
}

func (s *ReturnStmt) stmtNode()     {}
func (s *ReturnStmt) Pos() Position { return s.position }

type ExprStmt struct {
	Expr     Expr
	position Position
}

func (s *ExprStmt) stmtNode()     {}
func (s *ExprStmt) Pos() Position { return s.position }

// ===== Patterns =====

type IdentifierPattern struct {
	Name     string
	position Position
}

func (p *IdentifierPattern) patternNode()  {}
func (p *IdentifierPattern) Pos() Position { return p.position }

type TuplePattern struct {
	Elements []Pattern
	position Position
}

func (p *TuplePattern) patternNode()  {}
func (p *TuplePattern) Pos() Position { return p.position }

// ===== Type annotations =====

type NamedTypeExpr struct {
	Name     string
	position Position
}

func (t *NamedTypeExpr) typeNode()     {}
func (t *NamedTypeExpr) Pos() Position { return t.position }

type ListTypeExpr struct {
	Element  TypeExpr
	position Position
}

func (t *ListTypeExpr) typeNode()     {}
func (t *ListTypeExpr) Pos() Position { return t.position }

type TupleTypeExpr struct {
	Elements []TypeExpr
	position Position
}

func (t *TupleTypeExpr) typeNode()     {}
func (t *TupleTypeExpr) Pos() Position { return t.position }
