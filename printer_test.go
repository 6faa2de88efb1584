package golisp

import (
	"errors"
	"testing"
)

func TestPrint(t *testing.T) {
	cases := []struct {
		val  Value
		want string
	}{
		{Integer(42), "42"},
		{Integer(-7), "-7"},
		{Boolean(true), "#true"},
		{Boolean(false), "#false"},
		{Symbol("abc"), "abc"},
		{List{}, "()"},
		{List{Symbol("+"), Integer(1), List{Symbol("*"), Integer(2), Integer(3)}}, "(+ 1 (* 2 3))"},
		{&Function{Params: []string{"a", "b"}, Body: []Value{Symbol("+"), Symbol("a"), Symbol("b")}}, "(fn (a b) (+ a b))"},
		{&Function{}, "(fn () ())"},
		{&Primitive{Name: "+", Arity: 2}, "+/2"},
		{&SpecialForm{Name: "if", Arity: 3}, "if/3"},
		{&SpecialForm{Name: "progn", Arity: Variadic}, "progn/*"},
	}
	for _, tc := range cases {
		if got := Print(tc.val); got != tc.want {
			t.Errorf("Print(%#v) = %q, want %q", tc.val, got, tc.want)
		}
		if got := tc.val.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestPrintRoundTrip(t *testing.T) {
	vals := []List{
		{},
		{Integer(1), Integer(2), Integer(3)},
		{Symbol("+"), Integer(-1), List{Symbol("foo"), List{}}},
		{Symbol("#true"), Symbol("<="), Integer(9223372036854775807)},
	}
	for _, v := range vals {
		parsed, err := Parse(Print(v))
		if err != nil {
			t.Errorf("parse %s: %v", Print(v), err)
			continue
		}
		if !Equals(parsed, v) {
			t.Errorf("round trip of %s gave %s", Print(v), Print(parsed))
		}
	}
}

func TestIntoHelpers(t *testing.T) {
	if i, err := IntoInteger(Integer(3)); err != nil || i != 3 {
		t.Errorf("IntoInteger: %d, %v", i, err)
	}
	if b, err := IntoBoolean(Boolean(true)); err != nil || !b {
		t.Errorf("IntoBoolean: %v, %v", b, err)
	}
	if s, err := IntoSymbol(Symbol("x")); err != nil || s != "x" {
		t.Errorf("IntoSymbol: %q, %v", s, err)
	}
	if l, err := IntoList(List{Integer(1)}); err != nil || len(l) != 1 {
		t.Errorf("IntoList: %v, %v", l, err)
	}

	_, err := IntoInteger(Boolean(true))
	var evalErr *EvalError
	if !errors.As(err, &evalErr) || evalErr.Kind != TypeMismatch || evalErr.Name != "integer" {
		t.Fatalf("expected integer type mismatch, got %v", err)
	}
	if err.Error() != "expected integer, got #true" {
		t.Errorf("unexpected message: %s", err)
	}
	if _, err := IntoBoolean(Integer(1)); err == nil {
		t.Errorf("IntoBoolean accepted an integer")
	}
	if _, err := IntoSymbol(List{}); err == nil {
		t.Errorf("IntoSymbol accepted a list")
	}
	if _, err := IntoList(Symbol("x")); err == nil {
		t.Errorf("IntoList accepted a symbol")
	}
}
