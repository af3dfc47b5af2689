package consoles

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/reusee/taistep/logs"
	"github.com/reusee/taistep/vars"
)

// LoadPaths are extra directories searched by load(), in order, after the
// working directory.
type LoadPaths []string

// Globals are host values seeded into the namespace before the first
// snippet runs.
type Globals map[string]any

// Console is a persistent Starlark namespace. Bindings made by one Exec
// call are visible to all later calls. A console is created once per run
// and owned by the driver; it is not safe for concurrent use.
type Console struct {
	name           string
	thread         *starlark.Thread
	globals        starlark.StringDict
	opts           *syntax.FileOptions
	output         Output
	loadPaths      LoadPaths
	modules        map[string]*loadEntry
	logger         logs.Logger
	showSuppressed bool
	chunkCount     int
}

type NewConsole func(name string) *Console

func (Module) NewConsole(
	logger logs.Logger,
	loadPaths LoadPaths,
	globals Globals,
	output Output,
) NewConsole {
	return func(name string) *Console {
		name = vars.FirstNonZero(name, "console")
		c := &Console{
			name:    name,
			globals: make(starlark.StringDict),
			opts: &syntax.FileOptions{
				Set:             true,
				While:           true,
				TopLevelControl: true,
				GlobalReassign:  true,
				// later snippets depend on earlier loads
				LoadBindsGlobally: true,
				Recursion:         true,
			},
			output:    output,
			loadPaths: loadPaths,
			modules:   make(map[string]*loadEntry),
			logger:    logger,
		}
		c.thread = &starlark.Thread{
			Name: name,
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(c.output, msg)
			},
			Load: c.load,
		}
		c.globals["show"] = c.newShowBuiltin()
		for name, value := range globals {
			c.SetGlobal(name, value)
		}
		return c
	}
}

// Exec evaluates one chunk of code against the console's namespace.
// With suppressShow, the show builtin is a no-op for the duration of this
// call only; it is restored even when the evaluation fails.
func (c *Console) Exec(code string, suppressShow bool) error {
	if suppressShow {
		restore := c.suppressShow()
		defer restore()
	}

	c.chunkCount++
	f, err := c.opts.Parse(
		fmt.Sprintf("%s#%d", c.name, c.chunkCount),
		code,
		0,
	)
	if err != nil {
		return &EvalError{Err: err}
	}

	if err := starlark.ExecREPLChunk(f, c.thread, c.globals); err != nil {
		return &EvalError{Err: err}
	}
	return nil
}

// Globals exposes the namespace for inspection.
func (c *Console) Globals() starlark.StringDict {
	return c.globals
}
