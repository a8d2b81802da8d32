// Package api provides the HTTP API for the application
package api

import (
	"clockjar/internal/platform/config"
	"clockjar/internal/platform/logger"
	phttp "clockjar/internal/platform/net/http"
	"clockjar/internal/platform/store"

	"clockjar/internal/modkit"
	"clockjar/internal/modkit/httpkit"
	"clockjar/internal/modkit/module"
	"clockjar/internal/modkit/swaggerkit"

	metamod "clockjar/internal/services/api/meta/module"
	reportsmod "clockjar/internal/services/reports/module"
	trackermod "clockjar/internal/services/tracker/module"
	usersmod "clockjar/internal/services/users/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// Construct the users module first and extract its rate port
	users := usersmod.New(deps)
	rates := module.MustPortsOf[usersmod.Ports](users).Rates

	// Inject the rate lookup into the tracker module
	tracker := trackermod.New(
		deps,
		modkit.WithPorts(trackermod.Ports{
			Rates: rates,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		users, // include users so its ports are registered
		tracker,
		reportsmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
