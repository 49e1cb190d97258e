package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/realtype/asserts"
	"github.com/reusee/realtype/classify"
	"github.com/reusee/realtype/cmds"
	"github.com/reusee/realtype/configs"
	"github.com/reusee/realtype/debugs"
	"github.com/reusee/realtype/exprs"
	"github.com/reusee/realtype/logs"
	"github.com/reusee/realtype/modes"
	"github.com/reusee/realtype/rtconfigs"
	"github.com/reusee/realtype/suites"
)

var (
	classifyExprs = cmds.Collect[string]("classify", "print the shallow and real types of an expression")
	doTap         = cmds.Switch("-tap", "open a REPL with the classifiers")
)

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(run(dscope.New(
		new(Module),
		modes.ForProduction(),
	)))
}

func run(scope dscope.Scope) (exitCode int) {
	var ctx context.Context
	var loadErr error
	scope.Call(func(
		loader configs.Loader,
		newSpan logs.NewSpan,
	) {
		ctx, _ = newSpan(context.Background(), "")
		loadErr = logs.WrapSpan(ctx, loader.Err())
	})
	if loadErr != nil {
		fmt.Fprintln(os.Stderr, loadErr)
		return 1
	}

	switch {

	case len(*classifyExprs) > 0:
		scope.Call(func(
			sink asserts.Sink,
		) {
			if err := classifyAll(sink, *classifyExprs); err != nil {
				fmt.Fprintln(os.Stderr, logs.WrapSpan(ctx, err))
				exitCode = 1
			}
		})

	case *doTap:
		scope.Call(func(
			tap debugs.Tap,
		) {
			tap(ctx, "repl", map[string]any{
				"known_types": suites.KnownTypes(),
			})
		})

	default:
		scope.Call(func(
			runSuite suites.Run,
			strict rtconfigs.StrictExit,
		) {
			if failures := runSuite(ctx); failures > 0 && bool(strict) {
				exitCode = 1
			}
		})

	}

	return
}

func classifyAll(w io.Writer, srcs []string) error {
	for _, src := range srcs {
		v, err := exprs.Eval(src)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n",
			src,
			classify.GetType(v),
			classify.GetRealType(v),
		); err != nil {
			return err
		}
	}
	return nil
}
