package lucid

// ValueKind identifies the runtime representation of a Value.
type ValueKind int

const (
	ValueInt ValueKind = iota
	ValueFloat
	ValueBool
	ValueString
	ValueList
	ValueTuple
	ValueFunction
)

// Value is the tagged runtime value. The zero value is Int(0). Values are
// value-typed throughout the VM: collection operations produce fresh copies
// and never alias their inputs.
type Value struct {
	kind ValueKind
	data any
}

// functionRef is the payload of a Function value.
type functionRef struct {
	index int
	name  string
}

// TypeName returns the user-facing name of the value's kind.
func (v Value) TypeName() string {
	switch v.kind {
	case ValueInt:
		return "Int"
	case ValueFloat:
		return "Float"
	case ValueBool:
		return "Bool"
	case ValueString:
		return "String"
	case ValueList:
		return "List"
	case ValueTuple:
		return "Tuple"
	case ValueFunction:
		return "Function"
	}
	return "Unknown"
}

// Clone deep-copies the value; heap variants get fresh backing storage.
func (v Value) Clone() Value {
	switch v.kind {
	case ValueList, ValueTuple:
		elems := v.Elements()
		copied := make([]Value, len(elems))
		for i, elem := range elems {
			copied[i] = elem.Clone()
		}
		return Value{kind: v.kind, data: copied}
	default:
		return v
	}
}

// Equals compares two values structurally. Mismatched kinds are unequal,
// never an error.
func (v Value) Equals(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case ValueInt:
		return v.Int() == other.Int()
	case ValueFloat:
		return v.Float() == other.Float()
	case ValueBool:
		return v.Bool() == other.Bool()
	case ValueString:
		return v.Str() == other.Str()
	case ValueList, ValueTuple:
		a, b := v.Elements(), other.Elements()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equals(b[i]) {
				return false
			}
		}
		return true
	case ValueFunction:
		return v.data.(functionRef).index == other.data.(functionRef).index
	}
	return false
}

// IsTruthy coerces the value to Bool for logical operators and conditional
// jumps: zero numbers, empty strings, and empty collections are falsy.
func (v Value) IsTruthy() bool {
	switch v.kind {
	case ValueBool:
		return v.Bool()
	case ValueInt:
		return v.Int() != 0
	case ValueFloat:
		return v.Float() != 0.0
	case ValueString:
		return v.Str() != ""
	case ValueList, ValueTuple:
		return len(v.Elements()) != 0
	case ValueFunction:
		return true
	}
	return false
}
