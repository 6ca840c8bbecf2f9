package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/components"

	"github.com/veloreport/config"
	"github.com/veloreport/models"
	"github.com/veloreport/stats"
)

// Server hands one loaded session to the HTTP handlers. The session is
// read-only, so the handlers share it without locking.
type Server struct {
	session  *models.Session
	analysis config.Analysis
}

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		speedGradeChart(s.session),
		yearlyMileageChart(s.session),
		eddingtonProgressChart(s.session, s.analysis.ProgressYears),
		eddingtonGapChart(s.session, s.analysis.EddingtonTargets),
		coverageChart(s.session),
		paretoChart(s.session),
		segmentChart(s.session),
	)
	if err := page.Render(w); err != nil {
		http.Error(w, "Failed to render charts", http.StatusInternalServerError)
	}
}

type estimateResponse struct {
	Miles   float64 `json:"miles"`
	Feet    float64 `json:"feet"`
	Minutes int     `json:"minutes"`
}

// estimateHandler answers /estimate?miles=..&feet=.. with the predicted ride
// time in minutes from the fitted curve.
func (s *Server) estimateHandler(w http.ResponseWriter, r *http.Request) {
	miles, err := strconv.ParseFloat(r.URL.Query().Get("miles"), 64)
	if err != nil {
		http.Error(w, "Invalid miles value", http.StatusBadRequest)
		return
	}
	feet := 0.0
	if raw := r.URL.Query().Get("feet"); raw != "" {
		feet, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "Invalid feet value", http.StatusBadRequest)
			return
		}
	}

	minutes, err := s.session.Estimator.Minutes(miles, feet)
	if err != nil {
		http.Error(w, "Estimate failed: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, estimateResponse{Miles: miles, Feet: feet, Minutes: minutes})
}

type targetGap struct {
	Target   int  `json:"target"`
	Gap      int  `json:"gap"`
	Achieved bool `json:"achieved"`
}

type sessionSummary struct {
	Rides          int                  `json:"rides"`
	Segments       int                  `json:"segment_attempts"`
	Places         int                  `json:"places"`
	EddingtonMiles int                  `json:"eddington_miles"`
	EddingtonKm    int                  `json:"eddington_km"`
	Targets        []targetGap          `json:"targets"`
	Progress       []stats.YearProgress `json:"progress"`
	Curve          stats.Polynomial     `json:"curve"`
}

// summaryHandler serves the session's derived statistics as JSON.
func (s *Server) summaryHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, buildSummary(s.session, s.analysis))
}

func buildSummary(session *models.Session, analysis config.Analysis) sessionSummary {
	distances := session.Distances()
	kms := make([]float64, len(distances))
	for i, d := range distances {
		kms[i] = d * stats.KmPerMile
	}

	summary := sessionSummary{
		Rides:    len(session.Rides),
		Segments: len(session.Segments),
		Places:   len(session.Places),
		Curve:    session.Estimator.Curve,
	}
	if n, err := stats.Number(distances); err == nil {
		summary.EddingtonMiles = n
	}
	if n, err := stats.Number(kms); err == nil {
		summary.EddingtonKm = n
	}
	for _, target := range analysis.EddingtonTargets {
		gap := stats.Gap(distances, target)
		summary.Targets = append(summary.Targets, targetGap{
			Target:   target,
			Gap:      gap,
			Achieved: gap <= 0,
		})
	}

	years := session.Years()
	if analysis.ProgressYears > 0 && len(years) > analysis.ProgressYears {
		years = years[:analysis.ProgressYears]
	}
	summary.Progress = stats.Progress(session.RideDistances(), years)
	return summary
}

func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
