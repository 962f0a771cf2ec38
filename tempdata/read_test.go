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
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayLine(t *testing.T) {
	tests := []struct {
		line  string
		ok    bool
		index int
		temp  float64
	}{
		{"07:05 68.5", true, 425, 68.5},
		{"  07:05   68.5  ", true, 425, 68.5},
		{"07:05\t68.5", true, 425, 68.5},
		{"7:05 68.5", true, 425, 68.5},
		{"23:59 70", true, 1439, 70},
		{"00:00 -3.25", true, 0, -3.25},
		{"12:00 .5", true, 720, 0.5},
		{"07:5 68.5", false, 0, 0},
		{"07:05", false, 0, 0},
		{"07:05 abc", false, 0, 0},
		{"07:05 68.5 extra", false, 0, 0},
		{"0705 68.5", false, 0, 0},
		{"24:00 70.0", false, 0, 0},
		{"12:60 70.0", false, 0, 0},
		{"", false, 0, 0},
		{"# comment", false, 0, 0},
	}
	for _, tc := range tests {
		index, temp, ok := parseDayLine(tc.line)
		assert.Equal(t, tc.ok, ok, "line %q", tc.line)
		if tc.ok {
			assert.Equal(t, tc.index, index, "line %q", tc.line)
			assert.Equal(t, tc.temp, temp, "line %q", tc.line)
		}
	}
}

func TestReadTempData(t *testing.T) {
	in := strings.Join([]string{
		"header line",
		"00:00 70.0",
		"00:01 71.0",
		"not a reading",
		"00:03 68.0",
		"00:03 68.5",
		"25:00 50.0",
	}, "\n")
	s, err := ReadTempData(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, Reading{Temperature: 70, Present: true, Valid: true}, s[0])
	assert.Equal(t, Reading{Temperature: 71, Present: true, Valid: true}, s[1])
	assert.Equal(t, Reading{}, s[2])
	assert.Equal(t, 68.5, s[3].Temperature, "later lines replace earlier ones")

	present := 0
	for _, r := range s {
		if r.Present {
			present++
		}
	}
	assert.Equal(t, 3, present)
}

func TestReadTempDataMissingFile(t *testing.T) {
	_, err := ReadTempDataFromFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
