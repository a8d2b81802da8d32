// Package module wires the users service and exposes its ports
package module

import (
	"clockjar/internal/modkit"
	"clockjar/internal/modkit/httpkit"
	"clockjar/internal/services/users/domain"
	"clockjar/internal/services/users/repo"
	"clockjar/internal/services/users/service"
)

// Ports are the cross-module ports exposed by users
type Ports struct {
	Users domain.ServicePort
	Rates domain.RatePort
}

// Module defines the users module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the users module
func New(deps modkit.Deps) *Module {
	svc := service.New(deps.PG, repo.NewPG())

	m := &Module{deps: deps}
	m.ports = Ports{
		Users: svc,
		Rates: svc,
	}
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "users" }

// Prefix returns the module route prefix (none; users has no HTTP surface)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
