package models

import "fmt"

// Metrics are the columns derived from a record's raw miles/hours/feet.
// All fields stay float64 so that degenerate divisions (zero hours or miles)
// carry their IEEE Inf/NaN markers through instead of aborting the load.
type Metrics struct {
	MPH float64 `json:"mph"` // speed, miles per hour
	VAM float64 `json:"vam"` // climb rate, meters ascended per hour
	FPM float64 `json:"fpm"` // grade, feet climbed per mile
	Pct float64 `json:"pct"` // grade as a percent of the horizontal run
	Kms float64 `json:"kms"` // distance in kilometers
}

// Ride is one line of the ride log plus its derived metrics.
type Ride struct {
	Date  string  `json:"date"`
	Year  int     `json:"year"`
	Title string  `json:"title"`
	Hours float64 `json:"hours"`
	Miles float64 `json:"miles"`
	Feet  int     `json:"feet"`
	Metrics
}

// SegmentAttempt is one recorded time on a climbing segment. A segment line
// with several times expands into one attempt per time; the definition itself
// is not kept.
type SegmentAttempt struct {
	Title string  `json:"title"`
	Hours float64 `json:"hours"`
	Miles float64 `json:"miles"`
	Feet  int     `json:"feet"`
	Metrics
}

// Place is one road-coverage target with its monthly update history.
// Months holds 0-based month indexes and is always the same length as Pcts;
// updates are appended in file order so Months is non-decreasing.
type Place struct {
	Abbrev string    `json:"abbrev"`
	Name   string    `json:"name"`
	Miles  float64   `json:"miles"` // total road miles in the place
	Group  string    `json:"group"` // special group tag, empty if none
	Months []int     `json:"months"`
	Pcts   []float64 `json:"pcts"`
}

// PlaceRegistry maps a place abbreviation to its record.
type PlaceRegistry map[string]*Place

func (p *Place) addUpdate(month int, pct float64) {
	p.Months = append(p.Months, month)
	p.Pcts = append(p.Pcts, pct)
}

// Validate checks the history invariants: parallel month/percent sequences
// with non-decreasing month indexes.
func (p *Place) Validate() error {
	if len(p.Months) != len(p.Pcts) {
		return fmt.Errorf("place %q: %d months but %d percents", p.Abbrev, len(p.Months), len(p.Pcts))
	}
	for i := 1; i < len(p.Months); i++ {
		if p.Months[i] < p.Months[i-1] {
			return fmt.Errorf("place %q: month index %d after %d", p.Abbrev, p.Months[i], p.Months[i-1])
		}
	}
	return nil
}

// LatestPct returns the most recent coverage percentage, or false if the
// place has no updates yet.
func (p *Place) LatestPct() (float64, bool) {
	if len(p.Pcts) == 0 {
		return 0, false
	}
	return p.Pcts[len(p.Pcts)-1], true
}
