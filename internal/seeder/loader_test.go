package seeder

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/alexivanou/travel-planner/internal/repository"
	"github.com/alexivanou/travel-planner/internal/testdb"
)

func TestLoad(t *testing.T) {
	store := repository.NewStore(testdb.New(t))
	ctx := context.Background()

	catalog, err := Parse(strings.NewReader(sampleCatalog))
	require.NoError(t, err)

	summary, err := Load(ctx, store, catalog, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, &Summary{Countries: 1, Cities: 2, Attractions: 1, Hotels: 1}, summary)

	hotels, err := store.Repos().Hotel.List(ctx)
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, "Fushimi Inari", hotels[0].AttractionName)
	assert.Equal(t, "Kyoto", hotels[0].CityName)
}

func TestLoad_RollsBackOnBadRecord(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{name: "unknown parent", input: "country\tjp\tJapan\ncity\tparis\tfr\tParis\n", msg: `unknown country key "fr"`},
		{name: "duplicate key", input: "country\tjp\tJapan\ncountry\tjp\tJapan again\n", msg: `duplicate country key "jp"`},
		{name: "city in another country", input: "country\tjp\tJapan\ncountry\tfr\tFrance\ncity\tparis\tfr\tParis\nattraction\ta\tjp\tparis\tLouvre\n", msg: "is not in country"},
		{name: "invalid rating", input: "country\tjp\tJapan\ncity\tk\tjp\tKyoto\nattraction\ta\tjp\tk\tName\tType\t9\n", msg: "rating must be less than or equal to 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := repository.NewStore(testdb.New(t))
			ctx := context.Background()

			catalog, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)

			_, err = Load(ctx, store, catalog, zap.NewNop())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)

			countries, err := store.Repos().Country.List(ctx, model.CountryFilter{})
			require.NoError(t, err)
			assert.Empty(t, countries)
		})
	}
}
