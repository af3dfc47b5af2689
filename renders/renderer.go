package renders

import (
	"errors"
	"fmt"
	"strings"
)

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiGreen  = "\x1b[32m"
	ansiRed    = "\x1b[1;31m"
	ansiOrange = "\x1b[1;38;5;166m"
)

type Renderer struct {
	writer Writer
	color  bool
}

func (Module) Renderer(
	writer Writer,
	colorEnabled ColorEnabled,
) *Renderer {
	return &Renderer{
		writer: writer,
		color:  bool(colorEnabled),
	}
}

func (r *Renderer) paint(style string, text string) string {
	if !r.color {
		return text
	}
	return style + text + ansiReset
}

// Doc renders a documentation segment.
func (r *Renderer) Doc(text string) {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	fmt.Fprint(r.writer, r.paint(ansiBold, text))
}

// Notice renders a status message, such as a snippet being skipped.
func (r *Renderer) Notice(msg string) {
	fmt.Fprintln(r.writer, r.paint(ansiGreen, msg))
}

// EvalError renders a snippet failure inline; the run continues after it.
// Errors carrying a backtrace are rendered with it.
func (r *Renderer) EvalError(err error) {
	msg := err.Error()
	var traced interface{ Backtrace() string }
	if errors.As(err, &traced) {
		msg = traced.Backtrace()
	}
	fmt.Fprintln(r.writer, r.paint(ansiOrange, "An error occurred:"))
	fmt.Fprintln(r.writer, r.paint(ansiRed, strings.TrimRight(msg, "\n")))
}

// Separator renders the blank line between snippets.
func (r *Renderer) Separator() {
	fmt.Fprintln(r.writer)
}
