package lucid

import (
	"strconv"
	"strings"
)

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsInt() bool      { return v.kind == ValueInt }
func (v Value) IsFloat() bool    { return v.kind == ValueFloat }
func (v Value) IsBool() bool     { return v.kind == ValueBool }
func (v Value) IsString() bool   { return v.kind == ValueString }
func (v Value) IsList() bool     { return v.kind == ValueList }
func (v Value) IsTuple() bool    { return v.kind == ValueTuple }
func (v Value) IsFunction() bool { return v.kind == ValueFunction }

// IsNumeric reports whether the value is Int or Float.
func (v Value) IsNumeric() bool {
	return v.kind == ValueInt || v.kind == ValueFloat
}

func (v Value) Int() int64 {
	if v.kind != ValueInt {
		return 0
	}
	if v.data == nil {
		return 0
	}
	return v.data.(int64)
}

func (v Value) Float() float64 {
	switch v.kind {
	case ValueFloat:
		return v.data.(float64)
	case ValueInt:
		return float64(v.Int())
	default:
		return 0
	}
}

func (v Value) Bool() bool {
	if v.kind != ValueBool {
		return false
	}
	return v.data.(bool)
}

func (v Value) Str() string {
	if v.kind != ValueString {
		return ""
	}
	return v.data.(string)
}

// Elements returns the backing slice of a List or Tuple value.
func (v Value) Elements() []Value {
	if v.kind != ValueList && v.kind != ValueTuple {
		return nil
	}
	if v.data == nil {
		return nil
	}
	return v.data.([]Value)
}

func (v Value) FunctionIndex() int {
	if v.kind != ValueFunction {
		return -1
	}
	return v.data.(functionRef).index
}

func (v Value) FunctionName() string {
	if v.kind != ValueFunction {
		return ""
	}
	return v.data.(functionRef).name
}

// String renders the canonical form: strings quoted, floats in shortest
// round-trip notation, collections element-wise.
func (v Value) String() string {
	switch v.kind {
	case ValueInt:
		return strconv.FormatInt(v.Int(), 10)
	case ValueFloat:
		return strconv.FormatFloat(v.data.(float64), 'g', -1, 64)
	case ValueBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case ValueString:
		return "\"" + v.Str() + "\""
	case ValueList:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, elem := range v.Elements() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(elem.String())
		}
		sb.WriteByte(']')
		return sb.String()
	case ValueTuple:
		var sb strings.Builder
		sb.WriteByte('(')
		for i, elem := range v.Elements() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(elem.String())
		}
		sb.WriteByte(')')
		return sb.String()
	case ValueFunction:
		return "<function " + v.FunctionName() + ">"
	}
	return "<unknown>"
}

// Display renders the value for print/println: strings without surrounding
// quotes, everything else in canonical form.
func (v Value) Display() string {
	if v.kind == ValueString {
		return v.Str()
	}
	return v.String()
}
