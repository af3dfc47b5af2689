package stepconfigs

import (
	"github.com/reusee/taistep/configs"
	"github.com/reusee/taistep/consoles"
)

func (Module) Globals(
	loader configs.Loader,
) consoles.Globals {
	return consoles.Globals(
		configs.First[map[string]any](loader, "globals"),
	)
}
