package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rideLog = "# hand-curated log\n" +
	"date\tyear\ttitle\thours\tmiles\tfeet\n" +
	"3/12\t2022\tPortola loop\t2:05:00\t25.6\t1,450\n" +
	"\n" +
	"5/14\t2022\tMt Hamilton\t6:26:35\t80.05\t541\n" +
	"4/02\t2023\tCoast ride\t4:30:00\t52.3\t2,210\n"

func TestParseRides(t *testing.T) {
	rides, err := parseRides(strings.NewReader(rideLog), "rides.tsv")
	require.NoError(t, err)
	require.Len(t, rides, 3)

	first := rides[0]
	assert.Equal(t, "3/12", first.Date)
	assert.Equal(t, 2022, first.Year)
	assert.Equal(t, "Portola loop", first.Title)
	assert.Equal(t, 2.08, first.Hours)
	assert.Equal(t, 25.6, first.Miles)
	assert.Equal(t, 1450, first.Feet, "thousands separator stripped")

	// Derived columns attached at load time.
	ham := rides[1]
	assert.Equal(t, 12.43, ham.MPH)
	assert.Equal(t, 7.0, ham.FPM)
	assert.Equal(t, 128.8, ham.Kms)
}

func TestParseRidesHeaderOrderIndependent(t *testing.T) {
	log := "feet\tmiles\thours\ttitle\tyear\tdate\n" +
		"541\t80.05\t6:26:35\tMt Hamilton\t2022\t5/14\n"
	rides, err := parseRides(strings.NewReader(log), "rides.tsv")
	require.NoError(t, err)
	require.Len(t, rides, 1)
	assert.Equal(t, "Mt Hamilton", rides[0].Title)
	assert.Equal(t, 541, rides[0].Feet)
}

func TestParseRidesErrors(t *testing.T) {
	tests := []struct {
		name string
		log  string
		line int
	}{
		{
			name: "column count mismatch",
			log:  "date\tyear\ttitle\thours\tmiles\tfeet\n3/12\t2022\tshort row\n",
			line: 2,
		},
		{
			name: "bad duration",
			log:  "date\tyear\ttitle\thours\tmiles\tfeet\n3/12\t2022\tx\tnoon\t10\t100\n",
			line: 2,
		},
		{
			name: "bad feet",
			log:  "date\tyear\ttitle\thours\tmiles\tfeet\n3/12\t2022\tx\t1:00:00\t10\tlots\n",
			line: 2,
		},
		{
			name: "missing column",
			log:  "date\tyear\ttitle\thours\tmiles\n",
			line: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseRides(strings.NewReader(tt.log), "rides.tsv")
			require.Error(t, err)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.line, perr.Line)
			assert.Equal(t, "rides.tsv", perr.File)
		})
	}
}

func TestParseRidesIdempotent(t *testing.T) {
	a, err := parseRides(strings.NewReader(rideLog), "rides.tsv")
	require.NoError(t, err)
	b, err := parseRides(strings.NewReader(rideLog), "rides.tsv")
	require.NoError(t, err)
	require.Equal(t, a, b)
}
