package lucid

import "strings"

// TypeKind discriminates semantic type variants.
type TypeKind int

const (
	KindPrimitive TypeKind = iota
	KindList
	KindTuple
	KindFunction
	KindTypeVariable
	KindUnknown
)

// PrimitiveKind identifies the four nominal primitive types.
type PrimitiveKind int

const (
	PrimInt PrimitiveKind = iota
	PrimFloat
	PrimString
	PrimBool
)

// Type is the semantic type attached to expressions during checking.
type Type interface {
	Kind() TypeKind
	Equals(other Type) bool
	String() string
	Clone() Type
}

// ===== Primitive =====

type PrimitiveType struct {
	Primitive PrimitiveKind
}

func (t *PrimitiveType) Kind() TypeKind { return KindPrimitive }

func (t *PrimitiveType) Equals(other Type) bool {
	o, ok := other.(*PrimitiveType)
	return ok && o.Primitive == t.Primitive
}

func (t *PrimitiveType) String() string {
	switch t.Primitive {
	case PrimInt:
		return "Int"
	case PrimFloat:
		return "Float"
	case PrimString:
		return "String"
	case PrimBool:
		return "Bool"
	}
	return "Unknown"
}

func (t *PrimitiveType) Clone() Type {
	return &PrimitiveType{Primitive: t.Primitive}
}

// IsNumeric reports whether t is Int or Float.
func (t *PrimitiveType) IsNumeric() bool {
	return t.Primitive == PrimInt || t.Primitive == PrimFloat
}

func intType() *PrimitiveType    { return &PrimitiveType{Primitive: PrimInt} }
func floatType() *PrimitiveType  { return &PrimitiveType{Primitive: PrimFloat} }
func stringType() *PrimitiveType { return &PrimitiveType{Primitive: PrimString} }
func boolType() *PrimitiveType   { return &PrimitiveType{Primitive: PrimBool} }

// ===== List =====

type ListType struct {
	Element Type
}

func (t *ListType) Kind() TypeKind { return KindList }

func (t *ListType) Equals(other Type) bool {
	o, ok := other.(*ListType)
	return ok && t.Element.Equals(o.Element)
}

func (t *ListType) String() string {
	return "List[" + t.Element.String() + "]"
}

func (t *ListType) Clone() Type {
	return &ListType{Element: t.Element.Clone()}
}

// ===== Tuple =====

type TupleType struct {
	Elements []Type
}

func (t *TupleType) Kind() TypeKind { return KindTuple }

func (t *TupleType) Equals(other Type) bool {
	o, ok := other.(*TupleType)
	if !ok || len(t.Elements) != len(o.Elements) {
		return false
	}
	for i, elem := range t.Elements {
		if !elem.Equals(o.Elements[i]) {
			return false
		}
	}
	return true
}

func (t *TupleType) String() string {
	parts := make([]string, len(t.Elements))
	for i, elem := range t.Elements {
		parts[i] = elem.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t *TupleType) Clone() Type {
	elems := make([]Type, len(t.Elements))
	for i, elem := range t.Elements {
		elems[i] = elem.Clone()
	}
	return &TupleType{Elements: elems}
}

// ===== Function =====

type FunctionType struct {
	Params []Type
	Return Type
}

func (t *FunctionType) Kind() TypeKind { return KindFunction }

func (t *FunctionType) Equals(other Type) bool {
	o, ok := other.(*FunctionType)
	if !ok || len(t.Params) != len(o.Params) {
		return false
	}
	for i, param := range t.Params {
		if !param.Equals(o.Params[i]) {
			return false
		}
	}
	return t.Return.Equals(o.Return)
}

func (t *FunctionType) String() string {
	parts := make([]string, len(t.Params))
	for i, param := range t.Params {
		parts[i] = param.String()
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + t.Return.String()
}

func (t *FunctionType) Clone() Type {
	params := make([]Type, len(t.Params))
	for i, param := range t.Params {
		params[i] = param.Clone()
	}
	return &FunctionType{Params: params, Return: t.Return.Clone()}
}

// ===== Type variable =====

type TypeVariable struct {
	Name string
}

func (t *TypeVariable) Kind() TypeKind { return KindTypeVariable }

func (t *TypeVariable) Equals(other Type) bool {
	o, ok := other.(*TypeVariable)
	return ok && o.Name == t.Name
}

func (t *TypeVariable) String() string {
	return "'" + t.Name
}

func (t *TypeVariable) Clone() Type {
	return &TypeVariable{Name: t.Name}
}

// ===== Unknown =====

// UnknownType is the error-recovery sentinel. It never equals any type,
// itself included, so a single failure cannot cascade into spurious matches.
type UnknownType struct{}

func (t *UnknownType) Kind() TypeKind         { return KindUnknown }
func (t *UnknownType) Equals(other Type) bool { return false }
func (t *UnknownType) String() string         { return "Unknown" }
func (t *UnknownType) Clone() Type            { return &UnknownType{} }

func unknownType() *UnknownType { return &UnknownType{} }

// ===== Unification =====

// unifyTypes combines two types: equal types unify to a clone, a type
// variable takes the other side, Unknown absorbs everything. Returns nil
// when the types cannot be unified.
func unifyTypes(t1, t2 Type) Type {
	if t1.Kind() == KindUnknown || t2.Kind() == KindUnknown {
		return unknownType()
	}
	if _, ok := t1.(*TypeVariable); ok {
		return t2.Clone()
	}
	if _, ok := t2.(*TypeVariable); ok {
		return t1.Clone()
	}
	if t1.Equals(t2) {
		return t1.Clone()
	}
	return nil
}

// ===== Type environment =====

// typeEnvironment resolves the builtin primitive type names.
type typeEnvironment struct {
	builtins map[string]PrimitiveKind
}

func newTypeEnvironment() *typeEnvironment {
	return &typeEnvironment{
		builtins: map[string]PrimitiveKind{
			"Int":    PrimInt,
			"Float":  PrimFloat,
			"String": PrimString,
			"Bool":   PrimBool,
		},
	}
}

func (env *typeEnvironment) getBuiltin(name string) (Type, bool) {
	pk, ok := env.builtins[name]
	if !ok {
		return nil, false
	}
	return &PrimitiveType{Primitive: pk}, true
}

func (env *typeEnvironment) isBuiltin(name string) bool {
	_, ok := env.builtins[name]
	return ok
}
