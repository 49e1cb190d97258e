package suites

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/realtype/asserts"
	"github.com/reusee/realtype/logs"
	"github.com/reusee/realtype/rtconfigs"
)

type Module struct {
	dscope.Module
	Asserts asserts.Module
}

// Run reports the embedded suite followed by the config cases.
// It returns the number of failed assertions.
type Run func(ctx context.Context) int

func (Module) Run(
	reporter *asserts.Reporter,
	logger logs.Logger,
	newSpan logs.NewSpan,
	cases rtconfigs.Cases,
) Run {
	return func(ctx context.Context) int {
		ctx, _ = newSpan(ctx, "")
		Original(reporter)
		if len(cases) > 0 {
			ConfigCases(reporter, cases)
		}
		logger.InfoContext(ctx, "suite done",
			"passes", reporter.Passes(),
			"failures", reporter.Failures(),
		)
		return reporter.Failures()
	}
}
