package models

import "math"

const (
	feetPerMeter = 3.28084
	feetPerMile  = 5280.0
	kmPerMile    = 1.609
)

// ComputeMetrics derives speed, climb rate, grade and metric distance from
// one record's raw columns. Zero hours or miles do not abort the load: the
// divisions yield Inf/NaN per IEEE rules and downstream consumers filter
// non-finite rows before numeric work.
func ComputeMetrics(miles, hours float64, feet int) Metrics {
	f := float64(feet)
	return Metrics{
		MPH: round2(miles / hours),
		VAM: math.Round(f / hours / feetPerMeter),
		FPM: math.Round(f / miles),
		Pct: round2(f / miles * 100 / feetPerMile),
		Kms: round2(miles * kmPerMile),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// SpeedGradePoints returns the finite (grade, speed) pairs of the rides, the
// input to the speed-vs-grade curve fit. Rides with degenerate metrics are
// skipped.
func SpeedGradePoints(rides []Ride) (grades, speeds []float64) {
	for _, r := range rides {
		if !finite(r.FPM, r.MPH) {
			continue
		}
		grades = append(grades, r.FPM)
		speeds = append(speeds, r.MPH)
	}
	return grades, speeds
}
