package service

import (
	"time"

	"github.com/billcraft/billcraft/internal/cache"
	"github.com/billcraft/billcraft/internal/config"
	"github.com/billcraft/billcraft/internal/domain/plan"
	"github.com/billcraft/billcraft/internal/domain/snapshot"
	"github.com/billcraft/billcraft/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	PlanRepo     plan.Repository
	SnapshotRepo snapshot.Repository

	// FeatureCache is the shared read-mostly plan-features cache. It is
	// optional; without it every feature defaults to "Not Included"
	// unless a client override says otherwise.
	FeatureCache cache.Cache

	// Now overrides the clock for contract expiry checks; nil means
	// time.Now in UTC.
	Now func() time.Time
}
