// Package celenum exposes enumeration types to CEL expressions.
//
// Every constant of an enumeration becomes a CEL constant named
// "<type>.<KEY>", and instances bind to variables as their bare scalar, so
// policies can be written against declared names:
//
//	env, _ := cel.NewEnv(append(celenum.Constants(Color), celenum.Variable("color", Color))...)
//	ast, _ := env.Compile(`color == Color.PURPLE`)
//	prg, _ := env.Program(ast)
//	out, _, _ := prg.Eval(celenum.Bind("color", purple))
package celenum

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/zero-day-ai/typedenum/enum"
)

// Constants declares one CEL constant per key of e. It panics if e's
// declaration cannot be loaded, like e.Keys.
func Constants(e enum.Enumeration) []cel.EnvOption {
	keys := e.Keys()
	opts := make([]cel.EnvOption, 0, len(keys))
	for _, key := range keys {
		inst, err := e.Lookup(key)
		if err != nil {
			panic(err)
		}
		opts = append(opts, cel.Constant(e.ID()+"."+key, celType(e), celValue(inst.Scalar())))
	}
	return opts
}

// Variable declares a CEL variable holding a scalar of e's kind.
func Variable(name string, e enum.Enumeration) cel.EnvOption {
	return cel.Variable(name, celType(e))
}

// Bind returns an activation binding name to the instance's scalar.
func Bind(name string, inst enum.Instance) map[string]any {
	return map[string]any{name: inst.Scalar()}
}

func celType(e enum.Enumeration) *cel.Type {
	if e.Kind() == "string" {
		return cel.StringType
	}
	return cel.IntType
}

func celValue(v any) ref.Val {
	switch s := v.(type) {
	case int:
		return types.Int(s)
	case string:
		return types.String(s)
	default:
		return types.NewErr("unsupported enum scalar %s", fmt.Sprintf("%T", v))
	}
}
