package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resonate/internal/core/domain"
	"resonate/internal/core/port"
	"resonate/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (http.Handler, *mocks.MockMatchUseCase) {
	svc := mocks.NewMockMatchUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, logger, nil).Router(), svc
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestHandleMatch(t *testing.T) {
	h, svc := newTestHandler(t)

	want := port.MatchReq{
		CityID:   "sf",
		Audience: domain.AudienceSpec{CampaignID: "flu", Units: []string{"mission"}, Languages: []string{"es"}, BudgetTier: "small"},
		Limit:    5,
	}
	svc.EXPECT().Match(mock.Anything, want).Return(&domain.BatchResult{
		Results: []domain.MatchResult{{PublisherID: "el-tecolote", Overall: 0.9}},
	}, nil)

	rec := serve(h, http.MethodPost, "/api/v1/cities/sf/matches",
		`{"audience":{"campaign_id":"flu","units":["mission"],"languages":["es"],"budget_tier":"small"},"limit":5}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	got := decodeBody[domain.BatchResult](t, rec)
	require.Len(t, got.Results, 1)
	assert.Equal(t, "el-tecolote", got.Results[0].PublisherID)
}

func TestHandleMatch_InputError(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().Match(mock.Anything, mock.AnythingOfType("port.MatchReq")).
		Return(nil, domain.NewInputError(domain.CodeMissingGeography, "select at least one neighborhood or choose Citywide"))

	rec := serve(h, http.MethodPost, "/api/v1/cities/sf/matches", `{"audience":{"budget_tier":"small"}}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := decodeBody[errorResp](t, rec)
	assert.Equal(t, domain.CodeMissingGeography, got.Error)
	assert.Contains(t, got.Reason, "Citywide")
}

func TestHandleMatch_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodPost, "/api/v1/cities/sf/matches", `{"audience":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.CodeInvalidRequest, decodeBody[errorResp](t, rec).Error)
}

func TestHandleMatch_UnknownCity(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().Match(mock.Anything, mock.AnythingOfType("port.MatchReq")).Return(nil, domain.ErrCityNotFound)

	rec := serve(h, http.MethodPost, "/api/v1/cities/nyc/matches", `{}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "city_not_found", decodeBody[errorResp](t, rec).Error)
}

func TestHandleMatch_InternalError(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().Match(mock.Anything, mock.AnythingOfType("port.MatchReq")).Return(nil, errors.New("pool closed"))

	rec := serve(h, http.MethodPost, "/api/v1/cities/sf/matches", `{}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	got := decodeBody[errorResp](t, rec)
	assert.Equal(t, "internal", got.Error)
	assert.Empty(t, got.Reason, "internal causes are not leaked")
}

func TestHandleExplain(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().Explain(mock.Anything, mock.MatchedBy(func(r domain.MatchResult) bool {
		return r.PublisherID == "p1" && r.Overall == 0.5
	})).Return(domain.Breakdown{PublisherID: "p1", Dimensions: []domain.Explanation{{Dimension: domain.DimensionGeographic, Rationale: "Reaches the whole city"}}})

	rec := serve(h, http.MethodPost, "/api/v1/matches/explain", `{"publisher_id":"p1","overall":0.5}`)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[domain.Breakdown](t, rec)
	assert.Equal(t, "Reaches the whole city", got.Dimensions[0].Rationale)
}

func TestHandleOptimize(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().Optimize(mock.Anything, mock.MatchedBy(func(req port.OptimizeReq) bool {
		return req.CityID == "chicago" && req.Budget != nil && *req.Budget == 0 && req.MinScore == nil
	})).Return(&port.OptimizeResp{Selection: domain.MixSelection{PublisherIDs: []string{}}}, nil)

	rec := serve(h, http.MethodPost, "/api/v1/cities/chicago/mix/optimize",
		`{"audience":{"citywide":true,"budget_tier":"small"},"budget":0}`)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[port.OptimizeResp](t, rec)
	assert.Empty(t, got.Selection.PublisherIDs)
}

func TestHandleSummary(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().Summarize(mock.Anything, port.SummaryReq{CityID: "sf", PublisherIDs: []string{"a", "b"}}).
		Return(&domain.CoverageSummary{Units: []string{"mission"}, UniqueUnits: 1, TotalUnits: 4}, nil)

	rec := serve(h, http.MethodPost, "/api/v1/cities/sf/mix/summary", `{"publisher_ids":["a","b"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[domain.CoverageSummary](t, rec)
	assert.Equal(t, 1, got.UniqueUnits)
	assert.Equal(t, 4, got.TotalUnits)
}

func TestHandleCities(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().Cities(mock.Anything).Return([]port.CitySummary{{ID: "chicago", Name: "Chicagoland"}, {ID: "sf", Name: "San Francisco"}})

	rec := serve(h, http.MethodGet, "/api/v1/cities", "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[citiesResp](t, rec)
	assert.Len(t, got.Cities, 2)
}

func TestHandleGetCity(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().City(mock.Anything, "sf").Return(&domain.CityConfig{ID: "sf", Labels: domain.Labels{Unit: "neighborhood"}}, nil)

	rec := serve(h, http.MethodGet, "/api/v1/cities/sf", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "neighborhood", decodeBody[domain.CityConfig](t, rec).Labels.Unit)
}

func TestHandleGeography(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().Geography(mock.Anything, "chicago").Return(&port.GeographyResp{
		CityID: "chicago",
		Groups: []domain.GeoGroup{
			{Name: "Far North Side", Units: []domain.GeoUnit{{ID: "rogers-park"}}},
			{Name: domain.KeySuburbsGroup, Suburb: true, Units: []domain.GeoUnit{{ID: "evanston"}}},
		},
	}, nil)

	rec := serve(h, http.MethodGet, "/api/v1/cities/chicago/geography", "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[port.GeographyResp](t, rec)
	require.Len(t, got.Groups, 2)
	assert.True(t, got.Groups[1].Suburb)
}

func TestHealthAndMetrics(t *testing.T) {
	h, _ := newTestHandler(t)

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/healthz", "").Code)

	rec := serve(h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "resonate_http_requests_total")
}

func TestCORSPreflight(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/cities", nil)
	req.Header.Set("Origin", "https://wizard.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandleSummary_BodyTooLarge(t *testing.T) {
	h, _ := newTestHandler(t)

	ids := strings.Repeat(`"publisher-id",`, maxBodyBytes/15+1)
	body := `{"publisher_ids":[` + ids + `"last"]}`

	rec := serve(h, http.MethodPost, "/api/v1/cities/sf/mix/summary", body)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, domain.CodeInvalidRequest, decodeBody[errorResp](t, rec).Error)
}

func TestHandleExplain_BodyTooLarge(t *testing.T) {
	h, _ := newTestHandler(t)

	body := `{"publisher_id":"` + strings.Repeat("x", maxBodyBytes) + `"}`
	rec := serve(h, http.MethodPost, "/api/v1/matches/explain", body)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
