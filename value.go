package golisp

// Value is any runtime datum. The set of implementations is closed:
// Integer, Boolean, Symbol, List, *Function, *Primitive and *SpecialForm.
type Value interface {
	String() string
}

type Integer int64

type Boolean bool

// Symbol is an unresolved name. A symbol bound to another symbol forms an
// alias chain that the evaluator follows until it reaches a non-symbol.
type Symbol string

// List is both literal data and unevaluated code. The empty list is the
// unit value.
type List []Value

// Function is a user defined function. It captures no environment: free
// variables in Body are looked up from the scope active at the call site.
type Function struct {
	Params []string
	Body   []Value
}

// Variadic marks a special form that accepts any number of operands.
const Variadic = -1

// Primitive is a builtin binary operator; operands are evaluated before the
// operator is applied.
type Primitive struct {
	Name  string
	Arity int
}

// SpecialForm is a builtin control structure; it receives its operands
// unevaluated.
type SpecialForm struct {
	Name  string
	Arity int
}

func (i Integer) String() string      { return Print(i) }
func (b Boolean) String() string      { return Print(b) }
func (s Symbol) String() string       { return Print(s) }
func (l List) String() string         { return Print(l) }
func (f *Function) String() string    { return Print(f) }
func (p *Primitive) String() string   { return Print(p) }
func (s *SpecialForm) String() string { return Print(s) }

// Unit is the value of an empty progn or an empty function body.
func Unit() List {
	return List{}
}

// IntoInteger unwraps an Integer or fails with a type mismatch.
func IntoInteger(v Value) (int64, error) {
	i, ok := v.(Integer)
	if !ok {
		return 0, typeMismatch("integer", v)
	}
	return int64(i), nil
}

// IntoBoolean unwraps a Boolean or fails with a type mismatch.
func IntoBoolean(v Value) (bool, error) {
	b, ok := v.(Boolean)
	if !ok {
		return false, typeMismatch("boolean", v)
	}
	return bool(b), nil
}

// IntoSymbol unwraps a Symbol's name or fails with a type mismatch.
func IntoSymbol(v Value) (string, error) {
	s, ok := v.(Symbol)
	if !ok {
		return "", typeMismatch("symbol", v)
	}
	return string(s), nil
}

// IntoList unwraps a List or fails with a type mismatch.
func IntoList(v Value) (List, error) {
	l, ok := v.(List)
	if !ok {
		return nil, typeMismatch("list", v)
	}
	return l, nil
}
