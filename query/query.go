// Package query evaluates expr-lang predicates over description trees.
//
// Each node is presented to the expression as an environment with kind
// (textual), code (the wire integer), name, value, attrs and childCount:
//
//	kind == "Element" && attrs["class"] == "main"
//	childCount > 2
//	name == "#text" && value contains "hello"
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/treewire/go-treewire/desc"
)

// Query is a compiled node predicate.
type Query struct {
	src     string
	program *vm.Program
}

// Compile builds a predicate from an expr source string. The expression
// must produce a boolean.
func Compile(src string) (*Query, error) {
	program, err := expr.Compile(src, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compiling query %q: %w", src, err)
	}
	return &Query{src: src, program: program}, nil
}

func (q *Query) String() string { return q.src }

// Matches evaluates the predicate against a single description.
func (q *Query) Matches(d *desc.Node) (bool, error) {
	out, err := vm.Run(q.program, envFor(d))
	if err != nil {
		return false, fmt.Errorf("running query %q: %w", q.src, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("query %q returned %T, want bool", q.src, out)
	}
	return b, nil
}

// Select walks the description depth first and collects every node the
// predicate accepts, in visit order.
func (q *Query) Select(root *desc.Node) ([]*desc.Node, error) {
	var res []*desc.Node
	err := root.Visit(func(n *desc.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		ok, err := q.Matches(n)
		if err != nil {
			return false, err
		}
		if ok {
			res = append(res, n)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Select is a one-shot Compile plus Select.
func Select(root *desc.Node, src string) ([]*desc.Node, error) {
	q, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return q.Select(root)
}

func envFor(d *desc.Node) map[string]any {
	var value string
	if d.Value != nil {
		value = *d.Value
	}
	attrs := map[string]string{}
	for _, name := range d.Attributes.Names() {
		v, _ := d.Attributes.Get(name)
		attrs[name] = v
	}
	return map[string]any{
		"kind":       d.Kind.String(),
		"code":       int(d.Kind),
		"name":       d.Name,
		"value":      value,
		"hasValue":   d.Value != nil,
		"attrs":      attrs,
		"childCount": len(d.Children),
	}
}
