// Package integrity deletes root entities together with every row that
// depends on them, inside a single transaction.
package integrity

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/alexivanou/travel-planner/internal/failure"
	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/alexivanou/travel-planner/internal/repository"
)

// Deleter removes a root entity and its dependents
type Deleter interface {
	Delete(ctx context.Context, entity model.Entity, id int64) (*Report, error)
}

// Report describes a completed cascade delete
type Report struct {
	Entity  model.Entity           `json:"entity"`
	ID      int64                  `json:"id"`
	Removed map[model.Entity]int64 `json:"removed"`
}

// Total returns the number of rows removed, root included
func (r *Report) Total() int64 {
	var n int64
	for _, c := range r.Removed {
		n += c
	}
	return n
}

// Manager runs cascade rules against the store
type Manager struct {
	store  *repository.Store
	logger *zap.Logger
}

// NewManager creates a new integrity manager
func NewManager(store *repository.Store, logger *zap.Logger) *Manager {
	return &Manager{store: store, logger: logger}
}

// Delete removes the root row identified by entity and id after removing its
// dependents. A missing root is reported as not found; any store error while
// deleting rolls back everything and is reported as a failed delete.
func (m *Manager) Delete(ctx context.Context, entity model.Entity, id int64) (*Report, error) {
	steps, ok := Steps(entity)
	if !ok {
		return nil, failure.Validationf("unknown entity %q", entity)
	}

	report := &Report{Entity: entity, ID: id, Removed: map[model.Entity]int64{}}

	err := m.store.WithTx(ctx, func(repos *repository.Container) error {
		exists, err := repos.Cascade.Exists(ctx, entity, id)
		if err != nil {
			return failure.Storage(fmt.Errorf("failed to check %s %d: %w", entity, id, err))
		}
		if !exists {
			return failure.NotFound(string(entity), id)
		}

		for _, step := range steps {
			n, err := repos.Cascade.DeleteSelected(ctx, step, id)
			if err != nil {
				return failure.DeleteFailed(string(entity), fmt.Errorf("step %s: %w", step, err))
			}
			report.Removed[step.Entity] += n
		}

		n, err := repos.Cascade.DeleteByID(ctx, entity, id)
		if err != nil {
			return failure.DeleteFailed(string(entity), err)
		}
		report.Removed[entity] += n
		return nil
	})
	if err != nil {
		if failure.Is(err, failure.KindDeleteFailed) {
			m.logger.Warn("Cascade delete rolled back",
				zap.String("entity", string(entity)),
				zap.Int64("id", id),
				zap.Error(err))
		}
		var f *failure.Failure
		if !errors.As(err, &f) {
			err = failure.Storage(err)
		}
		return nil, err
	}

	m.logger.Info("Cascade delete completed",
		zap.String("entity", string(entity)),
		zap.Int64("id", id),
		zap.Any("removed", report.Removed))
	return report, nil
}
