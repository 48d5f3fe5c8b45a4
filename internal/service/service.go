package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/alexivanou/travel-planner/internal/cache"
	"github.com/alexivanou/travel-planner/internal/failure"
	"github.com/alexivanou/travel-planner/internal/integrity"
	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/alexivanou/travel-planner/internal/repository"
	"github.com/alexivanou/travel-planner/internal/wizard"
)

// Service provides catalog management for the API
type Service struct {
	repos   *repository.Container
	deleter integrity.Deleter
	cache   cache.Cache
	logger  *zap.Logger
}

// NewService creates a new service instance
func NewService(
	repos *repository.Container,
	deleter integrity.Deleter,
	c cache.Cache,
	logger *zap.Logger,
) *Service {
	return &Service{
		repos:   repos,
		deleter: deleter,
		cache:   c,
		logger:  logger,
	}
}

// Delete removes an entity and everything depending on it
func (s *Service) Delete(ctx context.Context, entity model.Entity, id int64) (*integrity.Report, error) {
	report, err := s.deleter.Delete(ctx, entity, id)
	if err != nil {
		return nil, err
	}
	if entity == model.EntityCountry {
		s.invalidateFilterOptions(ctx)
	}
	return report, nil
}

// invalidateFilterOptions drops the cached wizard filter values after a
// country write
func (s *Service) invalidateFilterOptions(ctx context.Context) {
	if err := s.cache.Delete(ctx, wizard.FilterOptionsKey); err != nil {
		s.logger.Warn("Failed to invalidate filter options", zap.Error(err))
	}
}

func storage(action string, err error) error {
	return failure.Storage(fmt.Errorf("failed to %s: %w", action, err))
}

func requireExists(ctx context.Context, repos *repository.Container, entity model.Entity, id int64) error {
	ok, err := repos.Cascade.Exists(ctx, entity, id)
	if err != nil {
		return storage("check "+string(entity), err)
	}
	if !ok {
		return failure.Validationf("%s %d does not exist", entity, id)
	}
	return nil
}

func updated(ok bool, err error, entity model.Entity, id int64) error {
	if err != nil {
		return storage("update "+string(entity), err)
	}
	if !ok {
		return failure.NotFound(string(entity), id)
	}
	return nil
}
