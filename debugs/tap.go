package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/realtype/exprs"
	"github.com/reusee/realtype/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
)

// Tap opens a REPL on stdin with the classifier globals and the given extra globals.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := Globals()
		for name, value := range globals {
			mappings[name] = exprs.ToStarlark(value)
		}

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(exprs.FileOptions, thread, mappings)
	}
}
