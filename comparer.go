package golisp

import "slices"

// Equals reports whether two values are structurally equal.
func Equals(v1, v2 Value) bool {
	switch a := v1.(type) {
	case List:
		b, isList := v2.(List)
		return isList && sliceEquals(a, b)
	case *Function:
		b, isFn := v2.(*Function)
		if !isFn {
			return false
		}
		if a == b {
			return true
		}
		return slices.Equal(a.Params, b.Params) && sliceEquals(a.Body, b.Body)
	case *Primitive:
		b, isPrim := v2.(*Primitive)
		return isPrim && *a == *b
	case *SpecialForm:
		b, isSpec := v2.(*SpecialForm)
		return isSpec && *a == *b
	}
	return v1 == v2
}

func sliceEquals(slice1, slice2 []Value) bool {
	if len(slice1) != len(slice2) {
		return false
	}
	for i := 0; i < len(slice1); i++ {
		if !Equals(slice1[i], slice2[i]) {
			return false
		}
	}
	return true
}
