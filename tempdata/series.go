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

// Package tempdata holds one day of per-minute temperature readings and the
// passes that clean, smooth and classify them.
package tempdata

import "fmt"

const (
	MinPerHour = 60
	MinPerDay  = 24 * MinPerHour
)

// Reading is a single minute of the day.
// Status is only meaningful when Valid is set.
type Reading struct {
	Temperature float64
	Present     bool // A raw observation was recorded for this minute.
	Valid       bool
	Status      bool // AC on.
}

// Series is one day of readings indexed by hour*60 + minute.
// The zero value has every minute absent, invalid and off.
type Series [MinPerDay]Reading

// MinuteIndex returns the series index for the given time of day.
func MinuteIndex(hour, minute int) (int, bool) {
	if hour < 0 || hour > 23 || minute < 0 || minute >= MinPerHour {
		return 0, false
	}
	return hour*MinPerHour + minute, true
}

// Clock formats a series index as HH:MM.
func Clock(index int) string {
	return fmt.Sprintf("%02d:%02d", index/MinPerHour, index%MinPerHour)
}

// Set records a raw observation at index, marking it present and valid.
// Out of range indexes are ignored.
func (s *Series) Set(index int, temperature float64) {
	if index < 0 || index >= MinPerDay {
		return
	}
	s[index] = Reading{
		Temperature: temperature,
		Present:     true,
		Valid:       true,
	}
}

// At returns the reading at index. Indexes outside the day don't exist.
func (s *Series) At(index int) (Reading, bool) {
	if index < 0 || index >= MinPerDay {
		return Reading{}, false
	}
	return s[index], true
}

// validAt reports if index exists and holds a valid reading.
func (s *Series) validAt(index int) bool {
	r, ok := s.At(index)
	return ok && r.Valid
}
