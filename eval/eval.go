package eval

import (
	"errors"
	"fmt"

	"github.com/signadot/qtree/debug"
	"github.com/signadot/qtree/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrEval = errors.New("eval error")

const rootVar = "root"

type Program struct {
	src string
	prg *vm.Program
}

// Compile compiles src for repeated evaluation against trees.
func Compile(src string) (*Program, error) {
	prg, err := expr.Compile(src, expr.Env(map[string]any{}), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return &Program{src: src, prg: prg}, nil
}

func (p *Program) String() string {
	return p.src
}

// Run evaluates p against node and returns the result in its
// generic form.
func (p *Program) Run(node *ir.Node) (any, error) {
	env := Env(node)
	if debug.Eval() {
		debug.Logf("eval %q in %v\n", p.src, node)
	}
	res, err := expr.Run(p.prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return res, nil
}

// Eval evaluates p against node and converts the result to a tree.
func (p *Program) Eval(node *ir.Node) (*ir.Node, error) {
	res, err := p.Run(node)
	if err != nil {
		return nil, err
	}
	n, err := ir.FromAny(res)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return n, nil
}

// Match evaluates p against node, requiring a boolean result.
func (p *Program) Match(node *ir.Node) (bool, error) {
	res, err := p.Run(node)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q gave %T, not bool", ErrEval, p.src, res)
	}
	return b, nil
}

func Eval(node *ir.Node, src string) (*ir.Node, error) {
	p, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return p.Eval(node)
}

func Match(node *ir.Node, src string) (bool, error) {
	p, err := Compile(src)
	if err != nil {
		return false, err
	}
	return p.Match(node)
}

// Env gives the variables an expression sees for node.
func Env(node *ir.Node) map[string]any {
	v := ir.ToAny(node)
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{rootVar: v}
}
