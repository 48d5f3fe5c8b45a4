package repository

import (
	"context"
	"testing"

	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector_Where(t *testing.T) {
	tests := []struct {
		name     string
		sel      Selector
		expected string
	}{
		{
			name:     "direct",
			sel:      Selector{Entity: model.EntityBooking, Column: model.ColumnHotelID},
			expected: "hotel_id = ?",
		},
		{
			name: "through one table",
			sel: Selector{
				Entity: model.EntityHotel, Column: model.ColumnAttractionID,
				Through: &Selector{Entity: model.EntityAttraction, Column: model.ColumnCountryID},
			},
			expected: "attraction_id IN (SELECT id FROM attractions WHERE country_id = ?)",
		},
		{
			name: "through two tables",
			sel: Selector{
				Entity: model.EntityBooking, Column: model.ColumnHotelID,
				Through: &Selector{
					Entity: model.EntityHotel, Column: model.ColumnAttractionID,
					Through: &Selector{Entity: model.EntityAttraction, Column: model.ColumnCityID},
				},
			},
			expected: "hotel_id IN (SELECT id FROM hotels WHERE attraction_id IN (SELECT id FROM attractions WHERE city_id = ?))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.sel.Where())
		})
	}
}

func TestCascadeRepository(t *testing.T) {
	f := setupRepo(t)
	ctx := context.Background()

	exists, err := f.repos.Cascade.Exists(ctx, model.EntityHotel, f.hotel.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = f.repos.Cascade.Exists(ctx, model.EntityHotel, 999)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = f.repos.Cascade.Exists(ctx, model.Entity("planet"), 1)
	assert.Error(t, err)

	sel := Selector{
		Entity: model.EntityHotel, Column: model.ColumnAttractionID,
		Through: &Selector{Entity: model.EntityAttraction, Column: model.ColumnCountryID},
	}
	n, err := f.repos.Cascade.DeleteSelected(ctx, sel, f.country.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// city is still referenced by the attraction
	_, err = f.repos.Cascade.DeleteByID(ctx, model.EntityCity, f.city.ID)
	assert.Error(t, err)

	n, err = f.repos.Cascade.DeleteByID(ctx, model.EntityAttraction, f.attraction.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = f.repos.Cascade.DeleteByID(ctx, model.EntityAttraction, f.attraction.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	_, err = f.repos.Cascade.DeleteSelected(ctx, Selector{Entity: model.EntityHotel}, 1)
	assert.Error(t, err)
}
