package rtconfigs

import (
	"github.com/reusee/realtype/cmds"
	"github.com/reusee/realtype/configs"
	"github.com/reusee/realtype/vars"
)

var (
	colorFlag      = cmds.Switch("-color", "force colored output")
	noColorFlag    = cmds.Switch("-no-color", "disable colored output")
	strictExitFlag = cmds.Switch("-strict", "exit with 1 when any assertion fails")
)

// Color enables ANSI colors in assertion reports.
type Color bool

func (Module) Color(
	loader configs.Loader,
) Color {
	if *noColorFlag {
		return false
	}
	return Color(vars.FirstNonZero(
		*colorFlag,
		configs.First[bool](loader, "color"),
	))
}

// StrictExit makes the program exit with a non-zero code when an assertion fails.
type StrictExit bool

func (Module) StrictExit(
	loader configs.Loader,
) StrictExit {
	return StrictExit(vars.FirstNonZero(
		*strictExitFlag,
		configs.First[bool](loader, "strict_exit"),
	))
}

// Case is an assertion defined in config files.
// Expr is a value expression, Shallow and Real are the expected tags, if set.
type Case struct {
	Label   string `json:"label"`
	Expr    string `json:"expr"`
	Shallow string `json:"shallow,omitempty"`
	Real    string `json:"real,omitempty"`
}

// Cases are the cases of all config files, in file order.
type Cases []Case

func (Module) Cases(
	loader configs.Loader,
) (ret Cases) {
	for cases := range configs.All[[]Case](loader, "cases") {
		ret = append(ret, cases...)
	}
	return
}
