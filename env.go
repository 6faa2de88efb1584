package golisp

// Env is one scope in a chain of scopes. Many child scopes may share a
// parent; a scope's parent is fixed when it is created.
type Env struct {
	symbols map[string]Value
	parent  *Env
}

func NewEnv(s map[string]Value) *Env {
	if s == nil {
		s = make(map[string]Value)
	}
	return &Env{s, nil}
}

// BaseEnv returns a root scope holding the builtin operators, special forms
// and boolean literals.
func BaseEnv() *Env {
	s := make(map[string]Value, len(primitiveOps)+len(specialForms)+2)
	for name := range primitiveOps {
		s[name] = &Primitive{Name: name, Arity: 2}
	}
	for name, arity := range specialForms {
		s[name] = &SpecialForm{Name: name, Arity: arity}
	}
	s["#true"] = Boolean(true)
	s["#false"] = Boolean(false)
	return NewEnv(s)
}

// Extend returns a new empty scope whose parent is env.
func (env *Env) Extend() *Env {
	return &Env{make(map[string]Value), env}
}

// Get looks name up from the innermost scope outward. A symbol bound to
// another symbol is returned as is.
func (env *Env) Get(name string) (Value, bool) {
	for e := env; e != nil; e = e.parent {
		if val, ok := e.symbols[name]; ok {
			return val, true
		}
	}
	return nil, false
}

// Set binds name in the innermost scope only, shadowing any outer binding.
func (env *Env) Set(name string, val Value) {
	env.symbols[name] = val
}

func (env *Env) Parent() *Env {
	return env.parent
}
