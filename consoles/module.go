package consoles

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taistep/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// Output receives everything evaluated snippets print or show.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}
