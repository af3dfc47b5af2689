package consoles

import (
	"fmt"
	"strings"

	"go.starlark.net/starlark"
)

// show is the interactive-only side effect of a snippet, the equivalent of
// displaying a plot. print is routed through the thread hook and is never
// suppressed; show is.
func (c *Console) newShowBuiltin() *starlark.Builtin {
	return starlark.NewBuiltin("show",
		func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if c.showSuppressed {
				return starlark.None, nil
			}
			parts := make([]string, 0, len(args))
			for _, arg := range args {
				if s, ok := starlark.AsString(arg); ok {
					parts = append(parts, s)
				} else {
					parts = append(parts, arg.String())
				}
			}
			fmt.Fprintln(c.output, strings.Join(parts, " "))
			return starlark.None, nil
		})
}

// suppressShow intercepts show until restore is called. The caller must run
// restore on every exit path.
func (c *Console) suppressShow() (restore func()) {
	saved := c.showSuppressed
	c.showSuppressed = true
	return func() {
		c.showSuppressed = saved
	}
}
