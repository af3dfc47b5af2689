package consoles

import (
	"fmt"
	"os"
	"path/filepath"

	"go.starlark.net/starlark"
)

type loadEntry struct {
	globals starlark.StringDict
	err     error
}

// load resolves load() statements across the working directory and the
// configured load paths. Modules are loaded at most once per run; cycles
// are an error.
func (c *Console) load(thread *starlark.Thread, module string) (starlark.StringDict, error) {
	entry, ok := c.modules[module]
	if entry == nil {
		if ok {
			return nil, fmt.Errorf("cycle in load graph: %s", module)
		}
		c.modules[module] = nil // in progress

		entry = &loadEntry{}
		path, err := c.resolve(module)
		if err != nil {
			entry.err = err
		} else {
			c.logger.Debug("load module",
				"module", module,
				"path", path,
			)
			src, err := os.ReadFile(path)
			if err != nil {
				entry.err = err
			} else {
				loadThread := &starlark.Thread{
					Name:  "load " + module,
					Print: c.thread.Print,
					Load:  c.load,
				}
				entry.globals, entry.err = starlark.ExecFileOptions(
					c.opts,
					loadThread,
					path,
					src,
					starlark.StringDict{
						"show": c.newShowBuiltin(),
					},
				)
			}
		}
		c.modules[module] = entry
	}
	return entry.globals, entry.err
}

func (c *Console) resolve(module string) (string, error) {
	if filepath.IsAbs(module) {
		if _, err := os.Stat(module); err == nil {
			return module, nil
		}
		return "", fmt.Errorf("module not found: %s", module)
	}
	dirs := append([]string{"."}, c.loadPaths...)
	for _, dir := range dirs {
		path := filepath.Join(dir, module)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("module not found: %s", module)
}
