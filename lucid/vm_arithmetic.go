package lucid

import (
	"fmt"
	"math"
)

// binaryOp implements the numeric, comparison, and logical instructions.
// Mixed Int/Float operands coerce to Float.
func (vm *VM) binaryOp(op Opcode, a, b Value) (Value, error) {
	switch op {
	case OpAdd:
		return vm.binaryAdd(a, b)
	case OpSub:
		return vm.binarySub(a, b)
	case OpMul:
		return vm.binaryMul(a, b)
	case OpDiv:
		return vm.binaryDiv(a, b)
	case OpMod:
		return vm.binaryMod(a, b)
	case OpPow:
		return vm.binaryPow(a, b)
	case OpEq:
		return NewBool(a.Equals(b)), nil
	case OpNe:
		return NewBool(!a.Equals(b)), nil
	case OpLt:
		less, err := lessThan(a, b)
		if err != nil {
			return Value{}, err
		}
		return NewBool(less), nil
	case OpGt:
		less, err := lessThan(b, a)
		if err != nil {
			return Value{}, err
		}
		return NewBool(less), nil
	case OpLe:
		greater, err := lessThan(b, a)
		if err != nil {
			return Value{}, err
		}
		return NewBool(!greater), nil
	case OpGe:
		less, err := lessThan(a, b)
		if err != nil {
			return Value{}, err
		}
		return NewBool(!less), nil
	case OpAnd:
		return NewBool(a.IsTruthy() && b.IsTruthy()), nil
	case OpOr:
		return NewBool(a.IsTruthy() || b.IsTruthy()), nil
	}
	return Value{}, fmt.Errorf("Unknown binary opcode: %d", byte(op))
}

func (vm *VM) binaryAdd(a, b Value) (Value, error) {
	switch {
	case a.IsInt() && b.IsInt():
		return NewInt(a.Int() + b.Int()), nil
	case a.IsNumeric() && b.IsNumeric():
		return NewFloat(a.Float() + b.Float()), nil
	}
	return Value{}, fmt.Errorf("Cannot add %s and %s", a.TypeName(), b.TypeName())
}

func (vm *VM) binarySub(a, b Value) (Value, error) {
	switch {
	case a.IsInt() && b.IsInt():
		return NewInt(a.Int() - b.Int()), nil
	case a.IsNumeric() && b.IsNumeric():
		return NewFloat(a.Float() - b.Float()), nil
	}
	return Value{}, fmt.Errorf("Cannot subtract %s and %s", a.TypeName(), b.TypeName())
}

func (vm *VM) binaryMul(a, b Value) (Value, error) {
	switch {
	case a.IsInt() && b.IsInt():
		return NewInt(a.Int() * b.Int()), nil
	case a.IsNumeric() && b.IsNumeric():
		return NewFloat(a.Float() * b.Float()), nil
	}
	return Value{}, fmt.Errorf("Cannot multiply %s and %s", a.TypeName(), b.TypeName())
}

func (vm *VM) binaryDiv(a, b Value) (Value, error) {
	switch {
	case a.IsInt() && b.IsInt():
		if b.Int() == 0 {
			return Value{}, fmt.Errorf("Division by zero")
		}
		return NewInt(a.Int() / b.Int()), nil
	case a.IsNumeric() && b.IsNumeric():
		if b.Float() == 0.0 {
			return Value{}, fmt.Errorf("Division by zero")
		}
		return NewFloat(a.Float() / b.Float()), nil
	}
	return Value{}, fmt.Errorf("Cannot divide %s and %s", a.TypeName(), b.TypeName())
}

func (vm *VM) binaryMod(a, b Value) (Value, error) {
	if a.IsInt() && b.IsInt() {
		if b.Int() == 0 {
			return Value{}, fmt.Errorf("Modulo by zero")
		}
		return NewInt(a.Int() % b.Int()), nil
	}
	return Value{}, fmt.Errorf("Modulo requires two integers, got %s and %s", a.TypeName(), b.TypeName())
}

// binaryPow on two Ints truncates the double-precision power back to Int;
// large exponents lose precision, a documented limitation.
func (vm *VM) binaryPow(a, b Value) (Value, error) {
	switch {
	case a.IsInt() && b.IsInt():
		return NewInt(int64(math.Pow(float64(a.Int()), float64(b.Int())))), nil
	case a.IsNumeric() && b.IsNumeric():
		return NewFloat(math.Pow(a.Float(), b.Float())), nil
	}
	return Value{}, fmt.Errorf("Cannot raise %s to power of %s", a.TypeName(), b.TypeName())
}

// lessThan orders two values of the same kind; only Int, Float, and String
// support ordering.
func lessThan(a, b Value) (bool, error) {
	if a.Kind() != b.Kind() {
		return false, fmt.Errorf("Cannot compare %s and %s", a.TypeName(), b.TypeName())
	}

	switch a.Kind() {
	case ValueInt:
		return a.Int() < b.Int(), nil
	case ValueFloat:
		return a.Float() < b.Float(), nil
	case ValueString:
		return a.Str() < b.Str(), nil
	default:
		return false, fmt.Errorf("Type %s does not support ordering comparison", a.TypeName())
	}
}
