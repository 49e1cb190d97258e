package exprs

import (
	"fmt"

	"github.com/reusee/realtype/values"
	"go.starlark.net/starlark"
)

// Eval evaluates a single expression in the builtin environment.
func Eval(src string) (values.Value, error) {
	thread := &starlark.Thread{
		Name: "expr",
	}
	ret, err := starlark.EvalOptions(FileOptions, thread, "<expr>", src, Builtins())
	if err != nil {
		return nil, fmt.Errorf("eval %q: %w", src, err)
	}
	value, err := FromStarlark(thread, ret)
	if err != nil {
		return nil, fmt.Errorf("eval %q: %w", src, err)
	}
	return value, nil
}

