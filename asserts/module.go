package asserts

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/realtype/logs"
	"github.com/reusee/realtype/rtconfigs"
)

type Module struct {
	dscope.Module
	RTConfigs rtconfigs.Module
	Logs      logs.Module
}

// Sink receives the report.
type Sink io.Writer

func (Module) Sink() Sink {
	return os.Stdout
}

func (Module) Reporter(
	sink Sink,
	logger logs.Logger,
	colorize rtconfigs.Color,
) *Reporter {
	return NewReporter(sink, logger, bool(colorize))
}
