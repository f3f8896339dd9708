package testutil

import (
	"context"
	"time"

	"github.com/billcraft/billcraft/internal/cache"
	"github.com/billcraft/billcraft/internal/config"
	"github.com/billcraft/billcraft/internal/logger"
	"github.com/billcraft/billcraft/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository implementations for testing
type Stores struct {
	PlanStore     *InMemoryPlanStore
	SnapshotStore *InMemorySnapshotStore
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	stores       Stores
	featureCache cache.Cache
	logger       *logger.Logger
	config       *config.Configuration
	now          time.Time
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Now().UTC()
	validator.NewValidator()

	var err error
	s.logger, err = logger.NewLogger("debug")
	s.Require().NoError(err)

	s.config = config.GetDefaultConfig()

	s.stores = Stores{
		PlanStore:     NewInMemoryPlanStore(),
		SnapshotStore: NewInMemorySnapshotStore(),
	}
	s.featureCache = cache.NewInMemoryCache()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.stores.PlanStore.Clear()
	s.stores.SnapshotStore.Clear()
	s.featureCache.Flush(s.ctx)
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

func (s *BaseServiceTestSuite) GetFeatureCache() cache.Cache {
	return s.featureCache
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
