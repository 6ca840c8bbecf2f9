package models

import (
	"fmt"
	"sort"

	"github.com/veloreport/stats"
)

// Session holds everything derived from one set of input files: the ride and
// segment tables, the place registry and the fitted duration estimator. It is
// built once by LoadSession and read-only afterwards; renderers and handlers
// take it as an explicit parameter.
type Session struct {
	Rides     []Ride
	Segments  []SegmentAttempt
	Places    PlaceRegistry
	Months    []string // month labels from the place file, in update order
	Estimator stats.Estimator
}

// LoadSession parses the three input files and fits the speed-vs-grade curve.
// Any parse error is fatal; there is no partial load.
func LoadSession(ridePath, segmentPath, placePath string, fitDegree int) (*Session, error) {
	rides, err := LoadRides(ridePath)
	if err != nil {
		return nil, err
	}
	segments, err := LoadSegments(segmentPath)
	if err != nil {
		return nil, err
	}
	places, months, err := LoadPlaces(placePath)
	if err != nil {
		return nil, err
	}

	grades, speeds := SpeedGradePoints(rides)
	curve, err := stats.FitPolynomial(grades, speeds, fitDegree)
	if err != nil {
		return nil, fmt.Errorf("failed to fit speed curve: %w", err)
	}

	return &Session{
		Rides:     rides,
		Segments:  segments,
		Places:    places,
		Months:    months,
		Estimator: stats.Estimator{Curve: curve},
	}, nil
}

// Distances returns every ride distance in miles, in file order.
func (s *Session) Distances() []float64 {
	out := make([]float64, len(s.Rides))
	for i, r := range s.Rides {
		out[i] = r.Miles
	}
	return out
}

// RideDistances is the per-year distance view the Eddington calculator
// consumes.
func (s *Session) RideDistances() []stats.RideDistance {
	out := make([]stats.RideDistance, len(s.Rides))
	for i, r := range s.Rides {
		out[i] = stats.RideDistance{Year: r.Year, Miles: r.Miles}
	}
	return out
}

// Years returns the distinct ride years in descending order.
func (s *Session) Years() []int {
	seen := map[int]bool{}
	var years []int
	for _, r := range s.Rides {
		if !seen[r.Year] {
			seen[r.Year] = true
			years = append(years, r.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// SortedPlaces returns the registry's places ordered by abbreviation, for
// stable iteration in renderers.
func (s *Session) SortedPlaces() []*Place {
	out := make([]*Place, 0, len(s.Places))
	for _, p := range s.Places {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Abbrev < out[j].Abbrev })
	return out
}
