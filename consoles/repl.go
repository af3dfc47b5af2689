package consoles

import (
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
)

// REPL drops into an interactive Starlark session over the console's live
// namespace, for inspecting the final state after a run.
func (c *Console) REPL() {
	thread := &starlark.Thread{
		Name:  "repl",
		Print: c.thread.Print,
		Load:  c.load,
	}
	repl.REPLOptions(c.opts, thread, c.globals)
}
