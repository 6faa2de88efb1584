package golisp

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a value in its canonical textual form. Integers, symbols and
// lists round-trip through Parse; callables render diagnostically.
func Print(val Value) string {
	switch t := val.(type) {
	case Integer:
		return strconv.FormatInt(int64(t), 10)
	case Boolean:
		if t {
			return "#true"
		}
		return "#false"
	case Symbol:
		return string(t)
	case List:
		return fmt.Sprintf("(%s)", printSlice(t))
	case *Function:
		return fmt.Sprintf("(fn (%s) (%s))", strings.Join(t.Params, " "), printSlice(t.Body))
	case *Primitive:
		return fmt.Sprintf("%s/%d", t.Name, t.Arity)
	case *SpecialForm:
		if t.Arity == Variadic {
			return t.Name + "/*"
		}
		return fmt.Sprintf("%s/%d", t.Name, t.Arity)
	case nil:
		return "()"
	default:
		return fmt.Sprintf("<%T>", val)
	}
}

func printSlice(vals []Value) string {
	arr := make([]string, len(vals))
	for i, v := range vals {
		arr[i] = Print(v)
	}
	return strings.Join(arr, " ")
}
