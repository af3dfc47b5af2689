package renders

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"golang.org/x/term"

	"github.com/reusee/taistep/configs"
)

type Module struct {
	dscope.Module
}

// Writer receives all rendered output.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stdout
}

type ColorEnabled bool

func (Module) ColorEnabled(
	loader configs.Loader,
) ColorEnabled {
	var color *bool
	if err := loader.AssignFirst("color", &color); err == nil && color != nil {
		return ColorEnabled(*color)
	}
	return ColorEnabled(
		term.IsTerminal(int(os.Stdout.Fd())),
	)
}
