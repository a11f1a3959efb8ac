package api

import (
	"github.com/reclaim-app/reclaim/internal/config"
	"github.com/reclaim-app/reclaim/internal/infrastructure"
	"github.com/reclaim-app/reclaim/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Matching   config.MatchingConfig
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Bus:       infra.Bus,
		},
		Pagination: cfg.API.Pagination,
		Matching:   cfg.Matching,
	}
}
