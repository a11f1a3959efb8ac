// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"fmt"
	"net/http"

	"github.com/reclaim-app/reclaim/internal/config"
	"github.com/reclaim-app/reclaim/internal/infrastructure"
	"github.com/reclaim-app/reclaim/pkg/middleware"
	"github.com/reclaim-app/reclaim/pkg/module"
	"github.com/reclaim-app/reclaim/pkg/openapi"
)

// NewModule creates the API module with all domain handlers and middleware.
// The returned domain is also used by background consumers outside the
// HTTP surface.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, *Domain, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	registerRoutes(mux, domain, cfg)

	spec := buildSpec(cfg)
	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, nil, fmt.Errorf("openapi spec marshal failed: %w", err)
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Infrastructure.Logger))
	m.Use(middleware.Principal())

	return m, domain, nil
}
