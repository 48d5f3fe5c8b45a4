package repository

import (
	"context"
	"fmt"

	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/jmoiron/sqlx"
)

// Selector picks rows of Entity by a foreign key Column. Without Through the
// column is compared to the root id; with Through it must hold one of the ids
// selected by the nested selector.
type Selector struct {
	Entity  model.Entity
	Column  string
	Through *Selector
}

// Where returns the SQL condition of the selector with a single ? placeholder
// for the root id.
func (s Selector) Where() string {
	if s.Through == nil {
		return s.Column + " = ?"
	}
	return s.Column + " IN (SELECT id FROM " + s.Through.Entity.Table() + " WHERE " + s.Through.Where() + ")"
}

func (s Selector) String() string {
	if s.Through == nil {
		return s.Entity.Table() + "." + s.Column
	}
	return s.Entity.Table() + "." + s.Column + " <- " + s.Through.String()
}

func (s Selector) valid() bool {
	if !s.Entity.Valid() || s.Column == "" {
		return false
	}
	return s.Through == nil || s.Through.valid()
}

type cascadeRepository struct {
	db sqlx.ExtContext
}

func (r *cascadeRepository) Exists(ctx context.Context, entity model.Entity, id int64) (bool, error) {
	if !entity.Valid() {
		return false, fmt.Errorf("unknown entity %q", entity)
	}
	var count int
	q := "SELECT COUNT(*) FROM " + entity.Table() + " WHERE id = ?"
	if err := sqlx.GetContext(ctx, r.db, &count, r.db.Rebind(q), id); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *cascadeRepository) DeleteSelected(ctx context.Context, sel Selector, rootID int64) (int64, error) {
	if !sel.valid() {
		return 0, fmt.Errorf("invalid selector %s", sel)
	}
	q := "DELETE FROM " + sel.Entity.Table() + " WHERE " + sel.Where()
	res, err := r.db.ExecContext(ctx, r.db.Rebind(q), rootID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *cascadeRepository) DeleteByID(ctx context.Context, entity model.Entity, id int64) (int64, error) {
	if !entity.Valid() {
		return 0, fmt.Errorf("unknown entity %q", entity)
	}
	q := "DELETE FROM " + entity.Table() + " WHERE id = ?"
	res, err := r.db.ExecContext(ctx, r.db.Rebind(q), id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
