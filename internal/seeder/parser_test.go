package seeder

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = "# comment\n" +
	"country\tjp\tJapan\tAsia\tJPY\tJapanese\n" +
	"\n" +
	"city\tkyoto\tjp\tKyoto\n" +
	"city\ttokyo\tjp\tTokyo\ttrue\n" +
	"attraction\tinari\tjp\tkyoto\tFushimi Inari\tShrine\t4.8\tlow\tTorii gates\n" +
	"hotel\tryokan\tinari\tkyoto\tRyokan\t4\t120.50\r\n"

func TestParse(t *testing.T) {
	catalog, err := Parse(strings.NewReader(sampleCatalog))
	require.NoError(t, err)
	assert.Equal(t, 5, catalog.Size())

	require.Len(t, catalog.Countries, 1)
	assert.Equal(t, "jp", catalog.Countries[0].Key)
	assert.Equal(t, "Japanese", catalog.Countries[0].Country.Language)

	require.Len(t, catalog.Cities, 2)
	assert.False(t, catalog.Cities[0].City.IsCapital)
	assert.True(t, catalog.Cities[1].City.IsCapital)
	assert.Equal(t, "jp", catalog.Cities[1].CountryKey)

	require.Len(t, catalog.Attractions, 1)
	a := catalog.Attractions[0]
	assert.Equal(t, "kyoto", a.CityKey)
	assert.InDelta(t, 4.8, a.Attraction.Rating, 0.0001)
	assert.Equal(t, "low", a.Attraction.BudgetLevel)

	require.Len(t, catalog.Hotels, 1)
	h := catalog.Hotels[0]
	assert.Equal(t, "inari", h.AttractionKey)
	assert.Equal(t, 4, h.Hotel.Stars)
	assert.True(t, decimal.RequireFromString("120.5").Equal(h.Hotel.PricePerNight))
	assert.Empty(t, h.Hotel.Contact)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{name: "unknown kind", input: "planet\tx\tMars\n", msg: `line 1: unknown record kind "planet"`},
		{name: "missing columns", input: "# header\ncity\tkyoto\tjp\n", msg: "line 2: city record needs at least 4 columns"},
		{name: "bad rating", input: "attraction\ta\tjp\tkyoto\tName\tType\tfive\n", msg: `invalid rating "five"`},
		{name: "bad capital flag", input: "city\tk\tjp\tKyoto\tmaybe\n", msg: `invalid is-capital "maybe"`},
		{name: "bad price", input: "hotel\th\ta\tc\tName\t3\tcheap\n", msg: `invalid price "cheap"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestParseFile_BundledCatalog(t *testing.T) {
	_, file, _, _ := runtime.Caller(0)
	catalog, err := ParseFile(filepath.Join(filepath.Dir(file), "..", "..", "data", "catalog.tsv"))
	require.NoError(t, err)
	assert.Len(t, catalog.Countries, 4)
	assert.Len(t, catalog.Hotels, 10)

	_, err = ParseFile("does-not-exist.tsv")
	assert.Error(t, err)
}
