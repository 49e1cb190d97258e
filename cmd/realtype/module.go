package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/realtype/debugs"
	"github.com/reusee/realtype/suites"
)

type Module struct {
	dscope.Module
	Suites suites.Module
	Debugs debugs.Module
}
