package lucid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// callMethod dispatches a method by the receiver's runtime kind. Every
// collection method returns a fresh value; receivers are never mutated.
func (vm *VM) callMethod(method string, receiver Value, args []Value) (Value, error) {
	switch receiver.Kind() {
	case ValueList:
		return vm.callListMethod(method, receiver, args)
	case ValueTuple:
		return vm.callTupleMethod(method, receiver, args)
	case ValueString:
		return vm.callStringMethod(method, receiver, args)
	case ValueInt:
		return vm.callIntMethod(method, receiver, args)
	case ValueFloat:
		return vm.callFloatMethod(method, receiver, args)
	}

	return Value{}, fmt.Errorf("Cannot call method '%s' on %s", method, receiver.TypeName())
}

func (vm *VM) callListMethod(method string, receiver Value, args []Value) (Value, error) {
	list := receiver.Elements()

	switch method {
	case "length":
		if len(args) != 0 {
			return Value{}, fmt.Errorf("List.length() takes no arguments")
		}
		return NewInt(int64(len(list))), nil

	case "append":
		if len(args) != 1 {
			return Value{}, fmt.Errorf("List.append() takes exactly 1 argument")
		}
		fresh := make([]Value, 0, len(list)+1)
		for _, elem := range list {
			fresh = append(fresh, elem.Clone())
		}
		fresh = append(fresh, args[0].Clone())
		return NewList(fresh), nil

	case "head":
		if len(args) != 0 {
			return Value{}, fmt.Errorf("List.head() takes no arguments")
		}
		if len(list) == 0 {
			return Value{}, fmt.Errorf("List.head() on empty list")
		}
		return list[0].Clone(), nil

	case "tail":
		if len(args) != 0 {
			return Value{}, fmt.Errorf("List.tail() takes no arguments")
		}
		if len(list) == 0 {
			return Value{}, fmt.Errorf("List.tail() on empty list")
		}
		fresh := make([]Value, 0, len(list)-1)
		for _, elem := range list[1:] {
			fresh = append(fresh, elem.Clone())
		}
		return NewList(fresh), nil

	case "is_empty":
		if len(args) != 0 {
			return Value{}, fmt.Errorf("List.is_empty() takes no arguments")
		}
		return NewBool(len(list) == 0), nil

	case "reverse":
		if len(args) != 0 {
			return Value{}, fmt.Errorf("List.reverse() takes no arguments")
		}
		fresh := make([]Value, len(list))
		for i, elem := range list {
			fresh[len(list)-1-i] = elem.Clone()
		}
		return NewList(fresh), nil

	case "concat":
		if len(args) != 1 || !args[0].IsList() {
			return Value{}, fmt.Errorf("List.concat() takes 1 list argument")
		}
		other := args[0].Elements()
		fresh := make([]Value, 0, len(list)+len(other))
		for _, elem := range list {
			fresh = append(fresh, elem.Clone())
		}
		for _, elem := range other {
			fresh = append(fresh, elem.Clone())
		}
		return NewList(fresh), nil
	}

	return Value{}, fmt.Errorf("Unknown method '%s' on List", method)
}

func (vm *VM) callTupleMethod(method string, receiver Value, args []Value) (Value, error) {
	if method == "length" {
		if len(args) != 0 {
			return Value{}, fmt.Errorf("Tuple.length() takes no arguments")
		}
		return NewInt(int64(len(receiver.Elements()))), nil
	}

	return Value{}, fmt.Errorf("Unknown method '%s' on Tuple", method)
}

func (vm *VM) callStringMethod(method string, receiver Value, args []Value) (Value, error) {
	str := receiver.Str()

	switch method {
	case "length":
		if len(args) != 0 {
			return Value{}, fmt.Errorf("String.length() takes no arguments")
		}
		return NewInt(int64(len(str))), nil

	case "is_empty":
		if len(args) != 0 {
			return Value{}, fmt.Errorf("String.is_empty() takes no arguments")
		}
		return NewBool(str == ""), nil

	case "contains":
		if len(args) != 1 || !args[0].IsString() {
			return Value{}, fmt.Errorf("String.contains() takes 1 string argument")
		}
		return NewBool(strings.Contains(str, args[0].Str())), nil

	case "starts_with":
		if len(args) != 1 || !args[0].IsString() {
			return Value{}, fmt.Errorf("String.starts_with() takes 1 string argument")
		}
		return NewBool(strings.HasPrefix(str, args[0].Str())), nil

	case "ends_with":
		if len(args) != 1 || !args[0].IsString() {
			return Value{}, fmt.Errorf("String.ends_with() takes 1 string argument")
		}
		return NewBool(strings.HasSuffix(str, args[0].Str())), nil

	case "to_upper":
		if len(args) != 0 {
			return Value{}, fmt.Errorf("String.to_upper() takes no arguments")
		}
		return NewString(strings.ToUpper(str)), nil

	case "to_lower":
		if len(args) != 0 {
			return Value{}, fmt.Errorf("String.to_lower() takes no arguments")
		}
		return NewString(strings.ToLower(str)), nil

	case "trim":
		if len(args) != 0 {
			return Value{}, fmt.Errorf("String.trim() takes no arguments")
		}
		return NewString(strings.Trim(str, " \t\n\r")), nil
	}

	return Value{}, fmt.Errorf("Unknown method '%s' on String", method)
}

func (vm *VM) callIntMethod(method string, receiver Value, args []Value) (Value, error) {
	switch method {
	case "to_string":
		if len(args) != 0 {
			return Value{}, fmt.Errorf("Int.to_string() takes no arguments")
		}
		return NewString(strconv.FormatInt(receiver.Int(), 10)), nil

	case "abs":
		if len(args) != 0 {
			return Value{}, fmt.Errorf("Int.abs() takes no arguments")
		}
		v := receiver.Int()
		if v < 0 {
			v = -v
		}
		return NewInt(v), nil
	}

	return Value{}, fmt.Errorf("Unknown method '%s' on Int", method)
}

func (vm *VM) callFloatMethod(method string, receiver Value, args []Value) (Value, error) {
	f := receiver.Float()

	switch method {
	case "to_string":
		if len(args) != 0 {
			return Value{}, fmt.Errorf("Float.to_string() takes no arguments")
		}
		return NewString(strconv.FormatFloat(f, 'g', -1, 64)), nil

	case "abs":
		if len(args) != 0 {
			return Value{}, fmt.Errorf("Float.abs() takes no arguments")
		}
		return NewFloat(math.Abs(f)), nil

	case "floor":
		if len(args) != 0 {
			return Value{}, fmt.Errorf("Float.floor() takes no arguments")
		}
		return NewInt(int64(math.Floor(f))), nil

	case "ceil":
		if len(args) != 0 {
			return Value{}, fmt.Errorf("Float.ceil() takes no arguments")
		}
		return NewInt(int64(math.Ceil(f))), nil

	case "round":
		if len(args) != 0 {
			return Value{}, fmt.Errorf("Float.round() takes no arguments")
		}
		return NewInt(int64(math.Round(f))), nil
	}

	return Value{}, fmt.Errorf("Unknown method '%s' on Float", method)
}
