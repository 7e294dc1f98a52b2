package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// ErrUnknownOperation is returned (wrapped) by Lookup for names that are not
// registered.
var ErrUnknownOperation = errors.New("unknown operation")

// Kind is the type of a Param value.
type Kind int

const (
	String Kind = iota
	Int
	Bool
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Int:
		return "int"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// Param describes one named argument of an Operation. Default must hold a
// value of the Go type matching Kind.
type Param struct {
	Name    string
	Kind    Kind
	Default any
	Usage   string
}

// Operation is a single text function exposed to the command line.
type Operation struct {
	Name   string
	Group  string // package the operation comes from, used for help output
	Short  string
	Params []Param
	Apply  func(ctx context.Context, subject string, args Args) (any, error)
}

// Args holds the parameter values an Operation runs with, keyed by Param name.
type Args map[string]any

// String returns the string argument name, or "" when it is missing.
func (a Args) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// Int returns the int argument name, or 0 when it is missing.
func (a Args) Int(name string) int {
	n, _ := a[name].(int)
	return n
}

// Bool returns the bool argument name, or false when it is missing.
func (a Args) Bool(name string) bool {
	b, _ := a[name].(bool)
	return b
}

// Bind returns args completed with the operation's defaults. String values
// given for Int or Bool params are parsed; names the operation does not
// declare are an error.
func (op Operation) Bind(args Args) (Args, error) {
	bound := make(Args, len(op.Params))
	for _, p := range op.Params {
		bound[p.Name] = p.Default
	}

	for name, value := range args {
		p, ok := op.param(name)
		if !ok {
			return nil, fmt.Errorf("operation %q has no parameter %q", op.Name, name)
		}
		v, err := coerce(p, value)
		if err != nil {
			return nil, fmt.Errorf("operation %q: %w", op.Name, err)
		}
		bound[name] = v
	}
	return bound, nil
}

func (op Operation) param(name string) (Param, bool) {
	for _, p := range op.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

func coerce(p Param, value any) (any, error) {
	switch p.Kind {
	case String:
		if s, ok := value.(string); ok {
			return s, nil
		}
	case Int:
		switch v := value.(type) {
		case int:
			return v, nil
		case string:
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
			}
			return n, nil
		}
	case Bool:
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
			}
			return b, nil
		}
	}
	return nil, fmt.Errorf("parameter %q wants %s, got %T", p.Name, p.Kind, value)
}

var registry = newRegistry(builtinOperations())

func newRegistry(ops []Operation) map[string]Operation {
	r := make(map[string]Operation, len(ops))
	for _, op := range ops {
		if _, dup := r[op.Name]; dup {
			panic("app: duplicate operation " + op.Name)
		}
		r[op.Name] = op
	}
	return r
}

// Lookup returns the operation registered under name.
func Lookup(name string) (Operation, error) {
	op, ok := registry[name]
	if !ok {
		return Operation{}, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return op, nil
}

// Operations returns every registered operation sorted by group, then name.
func Operations() []Operation {
	ops := make([]Operation, 0, len(registry))
	for _, op := range registry {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool {
		if ops[i].Group != ops[j].Group {
			return ops[i].Group < ops[j].Group
		}
		return ops[i].Name < ops[j].Name
	})
	return ops
}
