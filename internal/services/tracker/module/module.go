// Package module wires the tracker into the API using modkit
package module

import (
	"net/http"

	modkit "clockjar/internal/modkit"
	"clockjar/internal/modkit/httpkit"
	str "clockjar/internal/platform/strings"
	trackerhttp "clockjar/internal/services/tracker/http"
	trackerrepo "clockjar/internal/services/tracker/repo"
	trackersvc "clockjar/internal/services/tracker/service"
	usersdomain "clockjar/internal/services/users/domain"
)

// Ports are the cross-module ports the tracker consumes and exposes
type Ports struct {
	Rates usersdomain.RatePort // required, supplied by the users module
}

// Module implements the tracker module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc trackersvc.Service
}

// New constructs the tracker module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("tracker"),
		modkit.WithPrefix("/tracker"),
	}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok || ports.Rates == nil {
		panic("tracker module requires Ports{Rates}")
	}

	svc := trackersvc.New(deps.PG, trackerrepo.NewPG(), ports.Rates)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		trackerhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return adaptTrackerPort{svc: m.svc} }
