package stats

import (
	"context"
	"testing"

	"github.com/alexivanou/travel-planner/internal/config"
	"github.com/alexivanou/travel-planner/internal/testdb"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Collect(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()

	statements := []string{
		"INSERT INTO countries (id, name) VALUES (1, 'Test Country')",
		"INSERT INTO cities (id, country_id, name) VALUES (1, 1, 'Test City')",
		"INSERT INTO attractions (id, country_id, city_id, name, budget_level) VALUES (1, 1, 1, 'Test Attraction', 'low')",
		"INSERT INTO bookings (user_id, country_id, attraction_id, start_date, end_date, total_price) VALUES ('1', 1, 1, '2025-06-01', '2025-06-03', 15)",
		"INSERT INTO bookings (user_id, country_id, attraction_id, start_date, end_date, total_price) VALUES ('2', 1, 1, '2025-06-01', '2025-06-03', 215.5)",
	}
	for _, stmt := range statements {
		_, err := db.ExecContext(ctx, stmt)
		require.NoError(t, err)
	}

	cfg := config.DBConfig{Type: config.DBTypeMemory}
	collector := NewCollector(db, cfg)

	stats, err := collector.Collect(ctx)
	require.NoError(t, err)

	assert.Equal(t, "memory", stats.Database.Type)
	assert.Equal(t, int64(5), stats.Database.TotalRecords)

	counts := map[string]int64{}
	for _, ts := range stats.Database.TableStats {
		counts[ts.Name] = ts.RowCount
	}
	assert.Equal(t, map[string]int64{"countries": 1, "cities": 1, "attractions": 1, "hotels": 0, "bookings": 2}, counts)

	assert.Equal(t, int64(2), stats.Database.Bookings.Count)
	assert.Equal(t, int64(2), stats.Database.Bookings.Users)
	assert.True(t, decimal.RequireFromString("230.5").Equal(stats.Database.Bookings.Revenue), stats.Database.Bookings.Revenue.String())

	assert.Greater(t, stats.Memory.Alloc, uint64(0))
	assert.GreaterOrEqual(t, stats.Runtime.NumGoroutines, 1)

	stats2, err := collector.Collect(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats.Memory.Alloc, stats2.Memory.Alloc)
}

func TestCollector_EmptyDB(t *testing.T) {
	db := testdb.New(t)

	cfg := config.DBConfig{Type: config.DBTypeMemory}
	collector := NewCollector(db, cfg)

	stats, err := collector.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.Database.TotalRecords)
	assert.True(t, stats.Database.Bookings.Revenue.IsZero())
}
