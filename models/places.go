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

// sectionSeparator divides the place file's declaration section from its
// monthly update section.
var sectionSeparator = strings.Repeat("-", 80)

// LoadPlaces reads the two-section place file. Section 1 declares places as
// pipe-separated `abbrev | miles | name | special` rows; section 2 holds
// whitespace-separated update rows `month_label abbrev pct abbrev pct ...`.
// The month index of an update is the 0-based position of its line within
// section 2, counting only non-blank, non-comment lines; the month labels are
// returned in that order for axis labeling. An update that names an
// undeclared abbreviation fails with ErrUnknownPlace.
func LoadPlaces(path string) (PlaceRegistry, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open place file: %w", err)
	}
	defer f.Close()

	return parsePlaces(f, filepath.Base(path))
}

func parsePlaces(r io.Reader, name string) (PlaceRegistry, []string, error) {
	reg := PlaceRegistry{}
	var (
		labels    []string
		line      int
		inUpdates bool
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == sectionSeparator {
			if inUpdates {
				return nil, nil, parseErrorf(name, line, "second section separator")
			}
			inUpdates = true
			continue
		}
		if strings.TrimSpace(text) == "" || strings.HasPrefix(strings.TrimSpace(text), "#") {
			continue
		}

		if !inUpdates {
			if err := parsePlaceDecl(reg, text, name, line); err != nil {
				return nil, nil, err
			}
			continue
		}

		label, err := parsePlaceUpdate(reg, text, name, line, len(labels))
		if err != nil {
			return nil, nil, err
		}
		labels = append(labels, label)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read place file: %w", err)
	}
	if !inUpdates {
		return nil, nil, parseErrorf(name, line, "missing section separator")
	}
	return reg, labels, nil
}

func parsePlaceDecl(reg PlaceRegistry, text, name string, line int) error {
	fields := strings.Split(text, "|")
	if len(fields) != 4 {
		return parseErrorf(name, line, "expected 4 pipe-separated fields, got %d", len(fields))
	}
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	miles, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return parseErrorf(name, line, "bad miles %q: %v", fields[1], err)
	}
	abbrev := fields[0]
	if _, ok := reg[abbrev]; ok {
		return parseErrorf(name, line, "duplicate place %q", abbrev)
	}
	reg[abbrev] = &Place{
		Abbrev: abbrev,
		Name:   fields[2],
		Miles:  miles,
		Group:  fields[3],
	}
	return nil
}

func parsePlaceUpdate(reg PlaceRegistry, text, name string, line, month int) (string, error) {
	tokens := strings.Fields(text)
	// tokens[0] is the month label; the rest alternate abbrev, percent.
	if len(tokens)%2 == 0 {
		return "", parseErrorf(name, line, "dangling token in update row")
	}
	for i := 1; i < len(tokens); i += 2 {
		place, ok := reg[tokens[i]]
		if !ok {
			return "", fmt.Errorf("%s:%d: %w: %q", name, line, ErrUnknownPlace, tokens[i])
		}
		pct, err := strconv.ParseFloat(tokens[i+1], 64)
		if err != nil {
			return "", parseErrorf(name, line, "bad percent %q: %v", tokens[i+1], err)
		}
		place.addUpdate(month, pct)
	}
	return tokens[0], nil
}
