package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taistep/stepconfigs"
	"github.com/reusee/taistep/steps"
)

type Module struct {
	dscope.Module
	Steps   steps.Module
	Configs stepconfigs.Module
}
