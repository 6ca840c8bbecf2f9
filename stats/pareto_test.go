package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParetoFront(t *testing.T) {
	points := []ParetoPoint{
		{Label: "a", X: 1, Y: 5}, // dominated by d
		{Label: "b", X: 2, Y: 4}, // dominated by d
		{Label: "c", X: 3, Y: 1},
		{Label: "d", X: 2, Y: 5},
	}

	front := ParetoFront(points)
	labels := make([]string, len(front))
	for i, p := range front {
		labels[i] = p.Label
	}
	assert.Equal(t, []string{"c", "d"}, labels, "input order preserved")
}

func TestParetoFrontDuplicates(t *testing.T) {
	// Ties dominate nothing; both identical points survive.
	points := []ParetoPoint{
		{Label: "a", X: 1, Y: 1},
		{Label: "b", X: 1, Y: 1},
	}
	assert.Len(t, ParetoFront(points), 2)
}

func TestParetoFrontEmpty(t *testing.T) {
	assert.Empty(t, ParetoFront(nil))
}
