package api

import (
	"github.com/reclaim-app/reclaim/internal/claims"
	"github.com/reclaim-app/reclaim/internal/items"
	"github.com/reclaim-app/reclaim/internal/matches"
	"github.com/reclaim-app/reclaim/internal/notifications"
	"github.com/reclaim-app/reclaim/internal/sweep"
	"github.com/reclaim-app/reclaim/internal/taxonomy"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Taxonomy      taxonomy.System
	Items         items.System
	Claims        claims.System
	Matches       matches.System
	Sweep         sweep.System
	Notifications notifications.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	taxonomySystem := taxonomy.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	itemsSystem := items.New(
		runtime.Database.Connection(),
		taxonomySystem,
		runtime.Logger,
		runtime.Pagination,
	)

	claimsSystem := claims.New(
		runtime.Database.Connection(),
		itemsSystem,
		runtime.Logger,
	)

	matchesSystem := matches.New(
		runtime.Database.Connection(),
		itemsSystem,
		runtime.Bus,
		runtime.Matching.Weights,
		runtime.Logger,
	)

	sweepSystem := sweep.New(
		runtime.Database.Connection(),
		matchesSystem,
		runtime.Matching.SweepWorkers,
		runtime.Logger,
	)

	notificationsSystem := notifications.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	return &Domain{
		Taxonomy:      taxonomySystem,
		Items:         itemsSystem,
		Claims:        claimsSystem,
		Matches:       matchesSystem,
		Sweep:         sweepSystem,
		Notifications: notificationsSystem,
	}
}
