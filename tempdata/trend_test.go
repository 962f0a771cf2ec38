/*
ac-trend - Infers air conditioner cycling from temperature readings
Copyright (C) 2024, The Cacophony Project

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

package tempdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seriesFrom(start int, temps ...float64) *Series {
	s := &Series{}
	for i, v := range temps {
		s.Set(start+i, v)
	}
	return s
}

func statuses(s *Series, start, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = s[start+i].Status
	}
	return out
}

func TestTrendExtraction(t *testing.T) {
	tests := []struct {
		name     string
		temps    []float64
		expected []bool
	}{
		{
			name:     "strictly decreasing",
			temps:    []float64{80, 79, 78, 77, 76, 75},
			expected: []bool{false, true, true, true, true, true},
		},
		{
			name:     "single dip is not confirmed",
			temps:    []float64{80, 79, 79.5, 79.6},
			expected: []bool{false, false, false, false},
		},
		{
			name:     "flat keeps the AC on",
			temps:    []float64{80, 79, 78, 78, 78},
			expected: []bool{false, true, true, true, true},
		},
		{
			name:     "rise turns the AC off",
			temps:    []float64{80, 79, 78, 78.5, 78.6},
			expected: []bool{false, true, true, false, false},
		},
		{
			name:     "turns on again after a rise",
			temps:    []float64{80, 79, 78, 78.5, 78.2, 77.9},
			expected: []bool{false, true, true, false, true, true},
		},
		{
			name:     "rising",
			temps:    []float64{70, 71, 72, 73},
			expected: []bool{false, false, false, false},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			start := 10
			s := seriesFrom(start, tc.temps...)
			TrendExtraction(s)
			assert.Equal(t, tc.expected, statuses(s, start, len(tc.temps)))
		})
	}
}

func TestTrendExtractionFirstMinuteOff(t *testing.T) {
	s := seriesFrom(0, 80, 79, 78)
	s[0].Status = true

	TrendExtraction(s)

	assert.Equal(t, []bool{false, true, true}, statuses(s, 0, 3))
}

func TestTrendExtractionRestartsAfterGap(t *testing.T) {
	s := seriesFrom(0, 80, 79, 78, 77)
	s.Set(5, 76)
	s.Set(6, 75)
	s.Set(7, 74)

	TrendExtraction(s)

	assert.Equal(t, []bool{false, true, true, true}, statuses(s, 0, 4))
	assert.False(t, s[5].Status, "first reading after a gap is off")
	assert.True(t, s[6].Status)
	assert.True(t, s[7].Status)
}

func TestTrendExtractionInvalidUntouched(t *testing.T) {
	s := seriesFrom(0, 80, 79, 78, 77)
	s[2].Valid = false
	s[2].Status = true

	TrendExtraction(s)

	assert.True(t, s[2].Status)
	// 79 needs a valid lower successor to turn on.
	assert.False(t, s[1].Status)
	assert.False(t, s[3].Status)
}

func TestTrendExtractionLastMinute(t *testing.T) {
	s := seriesFrom(MinPerDay-2, 80, 79)
	TrendExtraction(s)
	// No successor exists for the last minute so it can't turn on.
	assert.False(t, s[MinPerDay-1].Status)

	s = seriesFrom(MinPerDay-3, 81, 80, 79)
	TrendExtraction(s)
	assert.Equal(t, []bool{false, true, true}, statuses(s, MinPerDay-3, 3))
}
