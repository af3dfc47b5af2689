package logs

import (
	"io"
	"os"
)

// Writer is the destination of terminal log output. Stdout is reserved
// for rendered documentation and snippet output.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
