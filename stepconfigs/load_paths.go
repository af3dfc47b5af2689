package stepconfigs

import (
	"slices"

	"github.com/reusee/taistep/cmds"
	"github.com/reusee/taistep/configs"
	"github.com/reusee/taistep/consoles"
)

var loadPathFlag = cmds.Collect[string]("-load-path")

func (Module) LoadPaths(
	loader configs.Loader,
) consoles.LoadPaths {
	paths := slices.Clone(*loadPathFlag)
	paths = append(paths,
		configs.First[[]string](loader, "load_paths")...,
	)
	return consoles.LoadPaths(paths)
}
