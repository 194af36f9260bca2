package lucid

func NewInt(i int64) Value     { return Value{kind: ValueInt, data: i} }
func NewFloat(f float64) Value { return Value{kind: ValueFloat, data: f} }
func NewBool(b bool) Value     { return Value{kind: ValueBool, data: b} }
func NewString(s string) Value { return Value{kind: ValueString, data: s} }
func NewList(e []Value) Value  { return Value{kind: ValueList, data: e} }
func NewTuple(e []Value) Value { return Value{kind: ValueTuple, data: e} }

func NewFunction(index int, name string) Value {
	return Value{kind: ValueFunction, data: functionRef{index: index, name: name}}
}
