package api

import (
	"github.com/greenswap/greenbot/internal/agent"
	"github.com/greenswap/greenbot/internal/config"
	"github.com/greenswap/greenbot/internal/infrastructure"
	"github.com/greenswap/greenbot/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Models     *agent.Config
	Pagination *pagination.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Agent:     infra.Agent,
		},
		Models:     &cfg.Agent,
		Pagination: &cfg.API.Pagination,
	}
}
