package golisp

import (
	"io"
	"log"
	"sync"
)

// Interpreter owns one shared environment and serializes every evaluation
// against it, so it is safe for use by multiple goroutines.
type Interpreter struct {
	mu       sync.Mutex
	env      *Env
	maxDepth int
	logger   *log.Logger
}

type Option func(*Interpreter)

// WithMaxDepth bounds evaluation nesting. Zero or less disables the limit.
func WithMaxDepth(n int) Option {
	return func(in *Interpreter) {
		in.maxDepth = n
	}
}

func WithLogger(l *log.Logger) Option {
	return func(in *Interpreter) {
		in.logger = l
	}
}

func NewInterpreter(opts ...Option) *Interpreter {
	in := &Interpreter{
		env:      BaseEnv(),
		maxDepth: DefaultMaxDepth,
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Evaluate parses src, evaluates it against the shared environment and
// renders the result. Evaluation errors are returned as *EvalError, parse
// errors as *SyntaxError and runtime faults as *Fault.
func (in *Interpreter) Evaluate(src string) (string, error) {
	val, err := Parse(src)
	if err != nil {
		return "", err
	}
	res, err := in.EvalValue(val)
	if err != nil {
		return "", err
	}
	return Print(res), nil
}

// EvalValue evaluates an already parsed program. Bindings made before a
// failure or fault are kept.
func (in *Interpreter) EvalValue(val Value) (res Value, err error) {
	in.mu.Lock()
	defer in.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			in.logger.Printf("fault evaluating %s: %v", Print(val), r)
			res, err = nil, &Fault{Cause: r}
		}
	}()

	return NewEvaluator(in.maxDepth).Eval(val, in.env)
}

// Lookup returns the value bound to name in the shared environment.
func (in *Interpreter) Lookup(name string) (Value, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.env.Get(name)
}

// Reset discards every definition and starts over from a fresh base
// environment.
func (in *Interpreter) Reset() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.env = BaseEnv()
}
