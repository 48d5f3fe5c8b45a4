package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alexivanou/travel-planner/internal/cache"
	"github.com/alexivanou/travel-planner/internal/config"
	"github.com/alexivanou/travel-planner/internal/integrity"
	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/alexivanou/travel-planner/internal/repository"
	"github.com/alexivanou/travel-planner/internal/service"
	"github.com/alexivanou/travel-planner/internal/stats"
	"github.com/alexivanou/travel-planner/internal/testdb"
	"github.com/alexivanou/travel-planner/internal/wizard"
)

type stack struct {
	t       *testing.T
	handler http.Handler
	csrf    string
}

func setupIntegrationStack(t *testing.T, csrf bool) *stack {
	db := testdb.New(t)
	logger := zap.NewNop()

	store := repository.NewStore(db)
	manager := integrity.NewManager(store, logger)
	noop := cache.NewNoop()
	catalog := service.NewService(store.Repos(), manager, noop, logger)
	wiz := wizard.NewService(store, noop, logger)
	collector := stats.NewCollector(db, config.DBConfig{Type: config.DBTypeMemory})

	router := NewRouter(catalog, wiz, collector, config.ServerConfig{DefaultUserID: "1", CSRFEnabled: csrf}, logger)
	s := &stack{t: t, handler: router}

	if csrf {
		rr := s.do("GET", "/api/v1/csrf", "", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		s.csrf = resp["token"]
	}
	return s
}

func (s *stack) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" && strings.HasPrefix(body, "{") {
		req.Header.Set("Content-Type", "application/json")
	} else if body != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if s.csrf != "" {
		req.AddCookie(&http.Cookie{Name: cookieCSRF, Value: s.csrf})
		req.Header.Set(headerCSRF, s.csrf)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	return rr
}

func (s *stack) create(path, body string) int64 {
	rr := s.do("POST", path, body, nil)
	require.Equal(s.t, http.StatusCreated, rr.Code, rr.Body.String())
	var resp struct {
		ID int64 `json:"id"`
	}
	require.NoError(s.t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.ID
}

func TestAPI_Integration_Wizard(t *testing.T) {
	s := setupIntegrationStack(t, true)

	japan := s.create("/api/v1/countries", `{"name":"Japan","region":"Asia","currency":"JPY","language":"Japanese"}`)
	s.create("/api/v1/countries", `{"name":"France","region":"Europe","currency":"EUR","language":"French"}`)
	kyoto := s.create("/api/v1/cities", fmt.Sprintf(`{"country_id":%d,"name":"Kyoto"}`, japan))
	var attractions []string
	for _, level := range []string{"low", "High", ""} {
		id := s.create("/api/v1/attractions", fmt.Sprintf(`{"country_id":%d,"city_id":%d,"name":"Spot %s","budget_level":"%s"}`, japan, kyoto, level, level))
		attractions = append(attractions, fmt.Sprint(id))
	}
	hotel := s.create("/api/v1/hotels", fmt.Sprintf(`{"attraction_id":%s,"city_id":%d,"name":"Ryokan","stars":4,"price_per_night":"100"}`, attractions[0], kyoto))

	// step 1
	rr := s.do("GET", "/api/v1/wizard/countries?region=Asia", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var countries wizard.CountryStep
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &countries))
	require.Len(t, countries.Countries, 1)
	assert.Equal(t, "Japan", countries.Countries[0].Name)
	assert.Equal(t, []string{"Asia", "Europe"}, countries.Options.Regions)

	// step 2
	rr = s.do("GET", fmt.Sprintf("/api/v1/wizard/attractions?countryId=%d", japan), "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var attractionStep wizard.AttractionStep
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &attractionStep))
	assert.Len(t, attractionStep.Attractions, 3)

	// step 3 carries the token forward
	selected := strings.Join(attractions, ",")
	rr = s.do("GET", "/api/v1/wizard/dates?state="+attractionStep.Token+"&selectedAttractions="+selected, "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var dateStep wizard.DateStep
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dateStep))

	// step 4
	rr = s.do("GET", "/api/v1/wizard/hotels?state="+dateStep.Token+"&startDate=2025-06-01&endDate=2025-06-03", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var hotelStep wizard.HotelStep
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &hotelStep))
	require.Len(t, hotelStep.Hotels, 1)
	assert.Equal(t, int64(2), hotelStep.Nights)

	// complete
	form := url.Values{"state": {hotelStep.Token}, "hotelId": {fmt.Sprint(hotel)}}
	rr = s.do("POST", "/api/v1/wizard/complete", form.Encode(), map[string]string{headerUserID: "42"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = s.do("GET", "/api/v1/wizard/confirmation", "", map[string]string{headerUserID: "42"})
	require.Equal(t, http.StatusOK, rr.Code)
	var confirmation []model.BookingDetail
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &confirmation))
	require.Len(t, confirmation, 3)
	totals := []string{}
	for _, b := range confirmation {
		totals = append(totals, b.TotalPrice.String())
	}
	assert.ElementsMatch(t, []string{"215", "250", "220"}, totals)

	rr = s.do("GET", "/api/v1/bookings/mine", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())

	// deleting the country removes everything booked there
	rr = s.do("DELETE", fmt.Sprintf("/api/v1/countries/%d", japan), "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var report integrity.Report
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, int64(3), report.Removed[model.EntityBooking])
	assert.Equal(t, int64(1), report.Removed[model.EntityHotel])

	rr = s.do("DELETE", fmt.Sprintf("/api/v1/countries/%d", japan), "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI_Integration_CatalogErrors(t *testing.T) {
	s := setupIntegrationStack(t, true)

	rr := s.do("POST", "/api/v1/countries", `{"name":""}`, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), `"input"`)

	rr = s.do("GET", "/api/v1/countries/12", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = s.do("PUT", "/api/v1/hotels/12", `{"attraction_id":1,"city_id":1,"name":"x","stars":3}`, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.do("POST", "/api/v1/bookings", `{"user_id":"1","country_id":1,"attraction_id":1,"start_date":"2025-06-03","end_date":"2025-06-01"}`, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "end_date must be on or after start_date")

	rr = s.do("GET", "/api/v1/wizard/hotels?countryId=1&selectedAttractions=1", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = s.do("GET", "/api/v1/stats", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = s.do("GET", "/api/v1/countries", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(headerRequestID))
}

func TestAPI_Integration_CSRFRequired(t *testing.T) {
	s := setupIntegrationStack(t, true)
	s.csrf = ""

	rr := s.do("POST", "/api/v1/countries", `{"name":"Peru"}`, nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	open := setupIntegrationStack(t, false)
	rr = open.do("POST", "/api/v1/countries", `{"name":"Peru"}`, nil)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestAPI_Integration_Health(t *testing.T) {
	s := setupIntegrationStack(t, false)
	rr := s.do("GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}
