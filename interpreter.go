package golisp

// DefaultMaxDepth bounds evaluation nesting when no other limit is given.
const DefaultMaxDepth = 10000

// primitives take two evaluated integer operands
var primitiveOps = map[string]func(a, b int64) Value{
	"+":  func(a, b int64) Value { return Integer(a + b) },
	"-":  func(a, b int64) Value { return Integer(a - b) },
	"*":  func(a, b int64) Value { return Integer(a * b) },
	"/":  func(a, b int64) Value { return Integer(a / b) },
	"=":  func(a, b int64) Value { return Boolean(a == b) },
	"!=": func(a, b int64) Value { return Boolean(a != b) },
	"<":  func(a, b int64) Value { return Boolean(a < b) },
	">":  func(a, b int64) Value { return Boolean(a > b) },
	"<=": func(a, b int64) Value { return Boolean(a <= b) },
	">=": func(a, b int64) Value { return Boolean(a >= b) },
}

// special form arities, Variadic for any number of operands
var specialForms = map[string]int{
	"quote": 1,
	"progn": Variadic,
	"let":   2,
	"if":    3,
	"def":   2,
	"fn":    2,
}

// special forms take unevaluated arguments and the env
type specialform func(ev *Evaluator, args []Value, env *Env) (Value, error)

var specialHandlers map[string]specialform

func init() {
	specialHandlers = map[string]specialform{
		"quote": quote,
		"progn": progn,
		"let":   let,
		"if":    ifprim,
		"def":   def,
		"fn":    fn,
	}
}

// Evaluator walks a value tree. It tracks nesting depth so that runaway
// recursion fails with RecursionLimitExceeded instead of exhausting the
// goroutine stack. An Evaluator must not be used by two goroutines at once.
type Evaluator struct {
	MaxDepth int
	depth    int
}

func NewEvaluator(maxDepth int) *Evaluator {
	return &Evaluator{MaxDepth: maxDepth}
}

// Eval evaluates val in env with the default depth limit.
func Eval(val Value, env *Env) (Value, error) {
	return NewEvaluator(DefaultMaxDepth).Eval(val, env)
}

// Eval evaluates val in env. Definitions made by def land in env's
// innermost scope.
func (ev *Evaluator) Eval(val Value, env *Env) (Value, error) {
	if err := ev.enter(); err != nil {
		return nil, err
	}
	defer ev.leave()

	switch t := val.(type) {
	case Integer, Boolean:
		return t, nil
	case Symbol:
		return ev.evalSymbol(t, env)
	case List:
		return ev.evalList(t, env)
	case *Function, *Primitive, *SpecialForm:
		return nil, &EvalError{Kind: CannotEvalCallable, Name: Print(t)}
	default:
		return nil, &EvalError{Kind: CannotEvalCallable, Name: Print(val)}
	}
}

func (ev *Evaluator) enter() error {
	if ev.MaxDepth > 0 && ev.depth >= ev.MaxDepth {
		return &EvalError{Kind: RecursionLimitExceeded, Expected: ev.MaxDepth}
	}
	ev.depth++
	return nil
}

func (ev *Evaluator) leave() {
	ev.depth--
}

// follow alias chains until a non-symbol value is found
func (ev *Evaluator) evalSymbol(sym Symbol, env *Env) (Value, error) {
	for hops := 0; ; hops++ {
		if ev.MaxDepth > 0 && hops >= ev.MaxDepth {
			return nil, &EvalError{Kind: RecursionLimitExceeded, Expected: ev.MaxDepth}
		}
		val, ok := env.Get(string(sym))
		if !ok {
			return nil, unboundSymbol(string(sym))
		}
		next, isSym := val.(Symbol)
		if !isSym {
			return val, nil
		}
		sym = next
	}
}

func (ev *Evaluator) evalList(list List, env *Env) (Value, error) {
	if len(list) == 0 {
		return Unit(), nil
	}

	front, err := ev.Eval(list[0], env)
	if err != nil {
		return nil, err
	}
	args := list[1:]

	switch head := front.(type) {
	case *Function:
		return ev.apply(head, args, env)
	case *Primitive:
		return ev.callPrimitive(head, args, env)
	case *SpecialForm:
		return ev.callSpecial(head, args, env)
	default:
		return nil, &EvalError{Kind: NotCallable, Name: Print(front)}
	}
}

// apply binds the unevaluated argument forms to the parameters in a child of
// the call-site scope. Extra arguments are dropped and missing ones stay
// unbound.
func (ev *Evaluator) apply(proc *Function, args []Value, env *Env) (Value, error) {
	if err := ev.enter(); err != nil {
		return nil, err
	}
	defer ev.leave()

	child := env.Extend()
	for i, param := range proc.Params {
		if i >= len(args) {
			break
		}
		child.Set(param, args[i])
	}
	return ev.evalList(proc.Body, child)
}

func (ev *Evaluator) callPrimitive(prim *Primitive, args []Value, env *Env) (Value, error) {
	if len(args) != prim.Arity {
		return nil, arityMismatch(prim.Name, prim.Arity, len(args))
	}
	op, ok := primitiveOps[prim.Name]
	if !ok || prim.Arity != 2 {
		return nil, &EvalError{Kind: NotCallable, Name: Print(prim)}
	}

	a, err := ev.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	b, err := ev.Eval(args[1], env)
	if err != nil {
		return nil, err
	}

	x, err := IntoInteger(a)
	if err != nil {
		return nil, err
	}
	y, err := IntoInteger(b)
	if err != nil {
		return nil, err
	}
	return op(x, y), nil
}

func (ev *Evaluator) callSpecial(spec *SpecialForm, args []Value, env *Env) (Value, error) {
	if spec.Arity != Variadic && len(args) != spec.Arity {
		return nil, arityMismatch(spec.Name, spec.Arity, len(args))
	}
	handler, ok := specialHandlers[spec.Name]
	if !ok {
		return nil, &EvalError{Kind: UnknownSpecialForm, Name: spec.Name}
	}
	return handler(ev, args, env)
}

// Special Forms

func quote(ev *Evaluator, args []Value, env *Env) (Value, error) {
	return args[0], nil
}

func progn(ev *Evaluator, args []Value, env *Env) (Value, error) {
	var result Value = Unit()
	for _, arg := range args {
		var err error
		result, err = ev.Eval(arg, env)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// let evaluates every initializer in the outer scope, so bindings cannot
// refer to each other.
func let(ev *Evaluator, args []Value, env *Env) (Value, error) {
	bindings, err := IntoList(args[0])
	if err != nil {
		return nil, err
	}

	child := env.Extend()
	for _, binding := range bindings {
		pair, err := IntoList(binding)
		if err != nil {
			return nil, err
		}
		if len(pair) != 2 {
			return nil, arityMismatch("let binding", 2, len(pair))
		}
		name, err := IntoSymbol(pair[0])
		if err != nil {
			return nil, err
		}
		val, err := ev.Eval(pair[1], env)
		if err != nil {
			return nil, err
		}
		child.Set(name, val)
	}

	return ev.Eval(args[1], child)
}

func ifprim(ev *Evaluator, args []Value, env *Env) (Value, error) {
	cond, err := ev.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	isTrue, err := IntoBoolean(cond)
	if err != nil {
		return nil, err
	}
	if isTrue {
		return ev.Eval(args[1], env)
	}
	return ev.Eval(args[2], env)
}

func def(ev *Evaluator, args []Value, env *Env) (Value, error) {
	name, err := IntoSymbol(args[0])
	if err != nil {
		return nil, err
	}
	evaled, err := ev.Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	env.Set(name, evaled)
	return Boolean(true), nil
}

// fn builds a function without evaluating its body.
func fn(ev *Evaluator, args []Value, env *Env) (Value, error) {
	paramList, err := IntoList(args[0])
	if err != nil {
		return nil, err
	}
	params := make([]string, len(paramList))
	for i, p := range paramList {
		name, err := IntoSymbol(p)
		if err != nil {
			return nil, err
		}
		params[i] = name
	}

	body, err := IntoList(args[1])
	if err != nil {
		return nil, err
	}
	return &Function{Params: params, Body: body}, nil
}
