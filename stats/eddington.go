package stats

import (
	"errors"
	"sort"
)

// KmPerMile is the distance conversion used for the metric Eddington unit.
const KmPerMile = 1.609

// ErrNoDistances means the Eddington number of an empty collection was
// requested. A zero number would be indistinguishable from "no data", so the
// empty case fails fast.
var ErrNoDistances = errors.New("no distances")

// Number returns the Eddington number of the distances: the largest e such
// that at least e of them are >= e.
func Number(distances []float64) (int, error) {
	if len(distances) == 0 {
		return 0, ErrNoDistances
	}
	sorted := make([]float64, len(distances))
	copy(sorted, distances)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	e := 0
	for i, d := range sorted {
		if d >= float64(i+1) {
			e = i + 1
		}
	}
	return e, nil
}

// Gap returns how many more rides of at least target distance are needed to
// raise the Eddington number to target. A negative result means the target is
// already exceeded, by that many qualifying rides.
func Gap(distances []float64, target int) int {
	count := 0
	for _, d := range distances {
		if d >= float64(target) {
			count++
		}
	}
	return target - count
}

// RideDistance is the minimal ride view the progress calculation needs.
type RideDistance struct {
	Year  int
	Miles float64
}

// YearProgress is the Eddington number, in both units, using only rides up to
// and including Year.
type YearProgress struct {
	Year  int `json:"year"`
	Miles int `json:"miles"`
	Km    int `json:"km"`
}

// Progress recomputes the Eddington number per cutoff year, in the order the
// years are given. A year with no rides yet reports zero in both units.
func Progress(rides []RideDistance, years []int) []YearProgress {
	out := make([]YearProgress, 0, len(years))
	for _, year := range years {
		var miles, kms []float64
		for _, r := range rides {
			if r.Year <= year {
				miles = append(miles, r.Miles)
				kms = append(kms, r.Miles*KmPerMile)
			}
		}
		p := YearProgress{Year: year}
		if len(miles) > 0 {
			p.Miles, _ = Number(miles)
			p.Km, _ = Number(kms)
		}
		out = append(out, p)
	}
	return out
}
