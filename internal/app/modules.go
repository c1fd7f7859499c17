package app

import (
	"github.com/vk/modkit/internal/registry"
	"github.com/vk/modkit/modules/env_vars"
	"github.com/vk/modkit/modules/print"
	"github.com/vk/modkit/modules/threshold"
)

// coreModules is the definitive list of all modules that are compiled into
// the modkit binary.
var coreModules = []registry.Module{
	&env_vars.Module{},
	&print.Module{},
	&threshold.Module{},
}
