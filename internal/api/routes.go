package api

import (
	"net/http"

	"github.com/reclaim-app/reclaim/internal/config"
	"github.com/reclaim-app/reclaim/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	maxBody := cfg.API.MaxBodySizeBytes()

	routes.Register(
		mux,
		domain.Taxonomy.Handler().Routes(),
		domain.Items.Handler(maxBody).Routes(),
		domain.Claims.Handler(maxBody).Routes(),
		domain.Matches.Handler(maxBody).Routes(),
		domain.Sweep.Handler().Routes(),
		domain.Notifications.Handler().Routes(),
	)
}
