package steps

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taistep/consoles"
	"github.com/reusee/taistep/renders"
)

type Module struct {
	dscope.Module
	Consoles consoles.Module
	Renders  renders.Module
}

// Interactive toggles blocking for one line of input between snippets.
type Interactive bool
