package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in     string
		hour   int
		minute int
	}{
		{"02:30 PM", 14, 30},
		{"2:30 PM", 14, 30},
		{"2:30 pm", 14, 30},
		{"9:30 AM", 9, 30},
		{"09:00 AM", 9, 0},
		{"12:00 PM", 12, 0},
		{"12:00 AM", 0, 0},
		{"14:30", 14, 30},
		{"09:00", 9, 0},
		{"  10:15  ", 10, 15},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.hour, got.Hour())
			assert.Equal(t, tc.minute, got.Minute())
		})
	}
}

func TestParseTimeOfDayEquivalence(t *testing.T) {
	twelve, err := ParseTimeOfDay("02:30 PM")
	require.NoError(t, err)
	twentyFour, err := ParseTimeOfDay("14:30")
	require.NoError(t, err)
	assert.Equal(t, twentyFour.Hour(), twelve.Hour())
	assert.Equal(t, twentyFour.Minute(), twelve.Minute())
}

func TestParseTimeOfDayRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "noon", "25:00", "13:00 PM", "99", "10.30"} {
		_, err := ParseTimeOfDay(in)
		assert.Error(t, err, "input %q", in)
	}
}
