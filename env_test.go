package golisp

import "testing"

func TestBaseEnv(t *testing.T) {
	env := BaseEnv()
	for _, op := range []string{"+", "-", "*", "/", "=", "!=", "<", ">", "<=", ">="} {
		val, ok := env.Get(op)
		if !ok || !Equals(val, &Primitive{Name: op, Arity: 2}) {
			t.Errorf("%s: got %v", op, val)
		}
	}
	forms := map[string]int{"progn": Variadic, "let": 2, "if": 3, "def": 2, "fn": 2, "quote": 1}
	for name, arity := range forms {
		val, ok := env.Get(name)
		if !ok || !Equals(val, &SpecialForm{Name: name, Arity: arity}) {
			t.Errorf("%s: got %v", name, val)
		}
	}
	if val, _ := env.Get("#true"); !Equals(val, Boolean(true)) {
		t.Errorf("#true: got %v", val)
	}
	if val, _ := env.Get("#false"); !Equals(val, Boolean(false)) {
		t.Errorf("#false: got %v", val)
	}
	if env.Parent() != nil {
		t.Errorf("base env has a parent")
	}
}

func TestEnvShadowing(t *testing.T) {
	root := NewEnv(nil)
	root.Set("a", Integer(1))
	child := root.Extend()
	child.Set("a", Integer(2))

	if val, _ := child.Get("a"); !Equals(val, Integer(2)) {
		t.Errorf("child sees %v, want 2", val)
	}
	if val, _ := root.Get("a"); !Equals(val, Integer(1)) {
		t.Errorf("set on child changed the parent: %v", val)
	}
}

func TestEnvLookupWalksParents(t *testing.T) {
	root := NewEnv(nil)
	root.Set("a", Integer(1))
	grandchild := root.Extend().Extend()

	if val, ok := grandchild.Get("a"); !ok || !Equals(val, Integer(1)) {
		t.Errorf("grandchild sees %v, %v", val, ok)
	}
	if _, ok := grandchild.Get("missing"); ok {
		t.Errorf("found an unbound name")
	}
}

func TestEnvSiblingsShareParent(t *testing.T) {
	root := NewEnv(nil)
	left, right := root.Extend(), root.Extend()
	left.Set("x", Integer(1))
	root.Set("y", Integer(2))

	if _, ok := right.Get("x"); ok {
		t.Errorf("sibling binding is visible")
	}
	if val, _ := right.Get("y"); !Equals(val, Integer(2)) {
		t.Errorf("late parent binding not visible: %v", val)
	}
	if left.Parent() != root || right.Parent() != root {
		t.Errorf("unexpected parents")
	}
}

func TestEnvGetDoesNotResolveAliases(t *testing.T) {
	env := NewEnv(nil)
	env.Set("a", Symbol("b"))
	env.Set("b", Integer(1))
	if val, _ := env.Get("a"); !Equals(val, Symbol("b")) {
		t.Errorf("Get resolved the alias: %v", val)
	}
}
