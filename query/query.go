// Package query evaluates expressions against JSON documents. The
// document's object fields become the expression environment, so
// `user.age > 21` addresses doc.user.age.
package query

import (
	"fmt"

	jdoc "github.com/jdoc-format/go-jdoc"
	"github.com/jdoc-format/go-jdoc/ir"

	"github.com/expr-lang/expr"
)

// Eval compiles and runs src against doc, returning the result as a
// fresh tree.
func Eval(doc *ir.Node, src string) (*ir.Node, error) {
	res, err := run(doc, src)
	if err != nil {
		return nil, err
	}
	return jdoc.FromAny(res)
}

// EvalBool runs src and requires a boolean result.
func EvalBool(doc *ir.Node, src string) (bool, error) {
	res, err := run(doc, src)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("query %q: want bool result, got %T", src, res)
	}
	return b, nil
}

func run(doc *ir.Node, src string) (any, error) {
	env := jdoc.ToAny(doc)
	opts := []expr.Option{}
	if m, ok := env.(map[string]any); ok {
		opts = append(opts, expr.Env(m))
	}
	// Env re-enables strict name checking, so the allowance must come
	// after it for absent fields to evaluate as nil.
	opts = append(opts, expr.AllowUndefinedVariables())
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("compiling query %q: %w", src, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("running query %q: %w", src, err)
	}
	return res, nil
}
