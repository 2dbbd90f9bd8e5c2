package router

import (
	"github.com/sessionworks/go-auth-api/internal/application"
	"github.com/sessionworks/go-auth-api/internal/container"
	pginfra "github.com/sessionworks/go-auth-api/internal/infrastructure/postgres"
	handlers "github.com/sessionworks/go-auth-api/internal/interface/http"
	"github.com/sessionworks/go-auth-api/internal/router/modules"
)

func buildAuthHandler() *handlers.AuthHandler {
	cfg := container.GetConfig()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	sessions := pginfra.NewSessionRepository(pool)

	service := application.NewService(
		users,
		sessions,
		container.GetLogger(),
		cfg.BcryptCost,
		cfg.SessionTTL,
	)

	return handlers.NewAuthHandler(service, container.GetLogger())
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	r.Add(modules.NewAuthModule(buildAuthHandler()))
	r.Add(modules.NewHealthModule(container.GetPGPool()))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
