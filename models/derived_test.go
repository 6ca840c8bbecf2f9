package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMetrics(t *testing.T) {
	// 80.05 miles in 6:26:35 (6.44 h after rounding) with 541 ft of climb.
	m := ComputeMetrics(80.05, 6.44, 541)

	assert.Equal(t, 12.43, m.MPH)
	assert.Equal(t, 26.0, m.VAM)
	assert.Equal(t, 7.0, m.FPM)
	assert.Equal(t, 0.13, m.Pct)
	assert.Equal(t, 128.8, m.Kms)
}

func TestComputeMetricsGradeConsistency(t *testing.T) {
	// The two grade representations agree within rounding error.
	cases := []struct {
		miles, hours float64
		feet         int
	}{
		{80.05, 6.44, 541},
		{2.98, 0.48, 1255},
		{52.3, 4.5, 2210},
	}
	for _, c := range cases {
		m := ComputeMetrics(c.miles, c.hours, c.feet)
		assert.InDelta(t, m.FPM/5280*100, m.Pct, 0.02)
	}
}

func TestComputeMetricsDegenerate(t *testing.T) {
	// Zero hours or miles must not panic; the markers propagate.
	m := ComputeMetrics(10, 0, 500)
	assert.True(t, math.IsInf(m.MPH, 1))
	assert.True(t, math.IsInf(m.VAM, 1))

	m = ComputeMetrics(0, 2, 500)
	assert.True(t, math.IsInf(m.FPM, 1))
	assert.True(t, math.IsInf(m.Pct, 1))
	assert.Equal(t, 0.0, m.MPH)

	m = ComputeMetrics(0, 0, 0)
	assert.True(t, math.IsNaN(m.MPH))
}

func TestSpeedGradePointsFiltersDegenerate(t *testing.T) {
	rides := []Ride{
		{Miles: 10, Hours: 1, Feet: 500},
		{Miles: 10, Hours: 0, Feet: 500}, // infinite speed, dropped
		{Miles: 0, Hours: 1, Feet: 500},  // infinite grade, dropped
	}
	for i := range rides {
		rides[i].Metrics = ComputeMetrics(rides[i].Miles, rides[i].Hours, rides[i].Feet)
	}

	grades, speeds := SpeedGradePoints(rides)
	assert.Len(t, grades, 1)
	assert.Len(t, speeds, 1)
	assert.Equal(t, 50.0, grades[0])
	assert.Equal(t, 10.0, speeds[0])
}
