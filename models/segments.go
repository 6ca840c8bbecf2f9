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

// At most five comma-fields of a segment line are meaningful:
// title, miles, feet and up to two attempt times. Extras are ignored.
const maxSegmentFields = 5

// LoadSegments reads the comma-separated segment file. Each line is
// `title, miles, feet, time[, time]` and expands into one SegmentAttempt per
// time, all sharing the line's miles and feet.
func LoadSegments(path string) ([]SegmentAttempt, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open segment file: %w", err)
	}
	defer f.Close()

	return parseSegments(f, filepath.Base(path))
}

func parseSegments(r io.Reader, name string) ([]SegmentAttempt, error) {
	var (
		attempts []SegmentAttempt
		line     int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Split(text, ",")
		if len(fields) < 4 {
			return nil, parseErrorf(name, line, "expected at least 4 comma-separated fields, got %d", len(fields))
		}
		if len(fields) > maxSegmentFields {
			fields = fields[:maxSegmentFields]
		}
		for i, f := range fields {
			fields[i] = strings.TrimSpace(f)
		}

		miles, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, parseErrorf(name, line, "bad miles %q: %v", fields[1], err)
		}
		feet, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, parseErrorf(name, line, "bad feet %q: %v", fields[2], err)
		}

		for _, ts := range fields[3:] {
			hours, err := ParseClock(ts)
			if err != nil {
				return nil, parseErrorf(name, line, "%v", err)
			}
			attempt := SegmentAttempt{
				Title: fields[0],
				Hours: hours,
				Miles: miles,
				Feet:  feet,
			}
			attempt.Metrics = ComputeMetrics(miles, hours, feet)
			attempts = append(attempts, attempt)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read segment file: %w", err)
	}
	return attempts, nil
}
