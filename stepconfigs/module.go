package stepconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taistep/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
