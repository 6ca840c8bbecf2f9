package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var rideColumns = []string{"date", "year", "title", "hours", "miles", "feet"}

// LoadRides reads the tab-separated ride log: a header row naming the
// columns date/year/title/hours/miles/feet, then one ride per line. Lines
// starting with # are skipped. Each ride gets its derived metrics attached.
func LoadRides(path string) ([]Ride, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ride log: %w", err)
	}
	defer f.Close()

	return parseRides(f, filepath.Base(path))
}

func parseRides(r io.Reader, name string) ([]Ride, error) {
	var (
		rides []Ride
		cols  map[string]int
		line  int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Split(text, "\t")
		if cols == nil {
			header, err := rideHeader(fields)
			if err != nil {
				return nil, parseErrorf(name, line, "%v", err)
			}
			cols = header
			continue
		}
		if len(fields) != len(cols) {
			return nil, parseErrorf(name, line, "expected %d tab-separated fields, got %d", len(cols), len(fields))
		}
		ride, err := parseRide(fields, cols)
		if err != nil {
			return nil, parseErrorf(name, line, "%v", err)
		}
		rides = append(rides, ride)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ride log: %w", err)
	}
	if cols == nil {
		return nil, parseErrorf(name, line, "missing header row")
	}
	return rides, nil
}

func rideHeader(fields []string) (map[string]int, error) {
	cols := make(map[string]int, len(fields))
	for i, f := range fields {
		cols[strings.ToLower(strings.TrimSpace(f))] = i
	}
	if len(cols) != len(fields) {
		return nil, fmt.Errorf("duplicate column in header")
	}
	for _, want := range rideColumns {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("header is missing column %q", want)
		}
	}
	if len(cols) != len(rideColumns) {
		return nil, fmt.Errorf("header has %d columns, want %d", len(cols), len(rideColumns))
	}
	return cols, nil
}

func parseRide(fields []string, cols map[string]int) (Ride, error) {
	get := func(col string) string { return strings.TrimSpace(fields[cols[col]]) }

	year, err := strconv.Atoi(get("year"))
	if err != nil {
		return Ride{}, fmt.Errorf("bad year %q: %w", get("year"), err)
	}
	hours, err := ParseClock(get("hours"))
	if err != nil {
		return Ride{}, err
	}
	miles, err := strconv.ParseFloat(get("miles"), 64)
	if err != nil {
		return Ride{}, fmt.Errorf("bad miles %q: %w", get("miles"), err)
	}
	feet, err := parseFeet(get("feet"))
	if err != nil {
		return Ride{}, err
	}

	ride := Ride{
		Date:  get("date"),
		Year:  year,
		Title: get("title"),
		Hours: hours,
		Miles: miles,
		Feet:  feet,
	}
	ride.Metrics = ComputeMetrics(miles, hours, feet)
	return ride, nil
}

// parseFeet parses a climb figure that may carry thousands separators,
// e.g. "5,410".
func parseFeet(s string) (int, error) {
	feet, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0, fmt.Errorf("bad feet %q: %w", s, err)
	}
	return feet, nil
}
