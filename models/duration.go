package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts a colon-separated clock string like "4:30:00" into
// fractional hours, rounded to two decimals. The rightmost field is seconds,
// each field to its left is worth sixty times the one before it, so "28:49"
// reads as 28 minutes 49 seconds.
func ParseClock(s string) (float64, error) {
	fields := strings.Split(strings.TrimSpace(s), ":")
	var total float64
	weight := 1.0 / 3600
	for i := len(fields) - 1; i >= 0; i-- {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return 0, fmt.Errorf("bad duration %q: %w", s, err)
		}
		total += v * weight
		weight *= 60
	}
	return round2(total), nil
}
