package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veloreport/config"
	"github.com/veloreport/models"
	"github.com/veloreport/stats"
)

func testSession(t *testing.T) *models.Session {
	t.Helper()

	rides := []models.Ride{
		{Date: "3/12", Year: 2022, Title: "Portola loop", Hours: 2.08, Miles: 25.6, Feet: 1450},
		{Date: "5/14", Year: 2022, Title: "Mt Hamilton", Hours: 6.44, Miles: 80.05, Feet: 5410},
		{Date: "4/22", Year: 2023, Title: "Pescadero", Hours: 5.18, Miles: 64.8, Feet: 4100},
		{Date: "4/06", Year: 2024, Title: "Diablo", Hours: 5.67, Miles: 62.5, Feet: 6250},
	}
	for i := range rides {
		rides[i].Metrics = models.ComputeMetrics(rides[i].Miles, rides[i].Hours, rides[i].Feet)
	}

	segments := []models.SegmentAttempt{
		{Title: "Old La Honda", Hours: 0.48, Miles: 2.98, Feet: 1255},
		{Title: "Old La Honda", Hours: 0.57, Miles: 2.98, Feet: 1255},
	}
	for i := range segments {
		segments[i].Metrics = models.ComputeMetrics(segments[i].Miles, segments[i].Hours, segments[i].Feet)
	}

	return &models.Session{
		Rides:    rides,
		Segments: segments,
		Places: models.PlaceRegistry{
			"por": {Abbrev: "por", Name: "Portola Valley", Miles: 48.2, Group: "west", Months: []int{0, 1}, Pcts: []float64{62.1, 70.8}},
			"wds": {Abbrev: "wds", Name: "Woodside", Miles: 102.5, Months: []int{1}, Pcts: []float64{35.4}},
		},
		Months:    []string{"2024-01", "2024-02"},
		Estimator: stats.Estimator{Curve: stats.Polynomial{Coeffs: []float64{12}}},
	}
}

func testServer(t *testing.T) *Server {
	return &Server{session: testSession(t), analysis: config.DefaultAnalysis()}
}

func TestEstimateHandler(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/estimate?miles=24&feet=500", nil)
	rec := httptest.NewRecorder()
	srv.estimateHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp estimateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 24.0, resp.Miles)
	assert.Equal(t, 500.0, resp.Feet)
	assert.Equal(t, 120, resp.Minutes, "constant 12 mph curve")
}

func TestEstimateHandlerBadInput(t *testing.T) {
	srv := testServer(t)

	for _, target := range []string{"/estimate", "/estimate?miles=far", "/estimate?miles=10&feet=steep"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		srv.estimateHandler(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %q", target)
	}

	// Zero distance parses but cannot be estimated.
	req := httptest.NewRequest(http.MethodGet, "/estimate?miles=0", nil)
	rec := httptest.NewRecorder()
	srv.estimateHandler(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSummaryHandler(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	rec := httptest.NewRecorder()
	srv.summaryHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got sessionSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 4, got.Rides)
	assert.Equal(t, 2, got.Segments)
	assert.Equal(t, 2, got.Places)
	assert.Equal(t, 4, got.EddingtonMiles, "all four rides exceed 25.6 miles")
}

func TestBuildSummary(t *testing.T) {
	analysis := config.Analysis{
		FitDegree:        1,
		EddingtonTargets: []int{3, 50},
		ProgressYears:    2,
	}
	got := buildSummary(testSession(t), analysis)

	assert.Equal(t, 4, got.EddingtonMiles)
	assert.Equal(t, 4, got.EddingtonKm)

	require.Len(t, got.Targets, 2)
	assert.True(t, got.Targets[0].Achieved)
	assert.Equal(t, 3-4, got.Targets[0].Gap, "exceeded by one qualifying ride")
	assert.False(t, got.Targets[1].Achieved)
	assert.Equal(t, 50-4, got.Targets[1].Gap)

	require.Len(t, got.Progress, 2, "capped at two years")
	assert.Equal(t, 2024, got.Progress[0].Year)
	assert.Equal(t, 2023, got.Progress[1].Year)
}

func TestIndexHandlerRendersCharts(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.indexHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "echarts")
	assert.Contains(t, body, "Eddington Progress")
	assert.Contains(t, body, "Road Coverage")
}

func TestIndexHandlerNotFound(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	srv.indexHandler(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
