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

import "fmt"

// Summary describes a processed series.
type Summary struct {
	Present   int `json:"present"`
	Valid     int `json:"valid"`
	Rejected  int `json:"rejected"`
	OnMinutes int `json:"onMinutes"`
	Runs      int `json:"runs"`
	// Number of times the AC was seen turning on.
	Cycles int `json:"cycles"`

	FirstValid string  `json:"firstValid,omitempty"`
	LastValid  string  `json:"lastValid,omitempty"`
	MinTemp    float64 `json:"minTemp"`
	MaxTemp    float64 `json:"maxTemp"`
}

func Summarize(s *Series) Summary {
	sum := Summary{}
	first, last := -1, -1
	for k, r := range s {
		if r.Present {
			sum.Present++
		}
		if r.Present && !r.Valid {
			sum.Rejected++
		}
		if !r.Valid {
			continue
		}
		sum.Valid++
		if first == -1 {
			first = k
			sum.MinTemp = r.Temperature
			sum.MaxTemp = r.Temperature
		}
		last = k
		sum.MinTemp = min(sum.MinTemp, r.Temperature)
		sum.MaxTemp = max(sum.MaxTemp, r.Temperature)

		if !s.validAt(k - 1) {
			sum.Runs++
		} else if r.Status && !s[k-1].Status {
			sum.Cycles++
		}
		if r.Status {
			sum.OnMinutes++
		}
	}
	if first != -1 {
		sum.FirstValid = Clock(first)
		sum.LastValid = Clock(last)
	}
	return sum
}

func (s Summary) String() string {
	if s.Valid == 0 {
		return fmt.Sprintf("no valid readings (%d present, %d rejected)", s.Present, s.Rejected)
	}
	return fmt.Sprintf("%d valid readings from %s to %s (%d rejected), %d runs, AC on for %d minutes over %d cycles, temperature %.3f to %.3f",
		s.Valid, s.FirstValid, s.LastValid, s.Rejected, s.Runs, s.OnMinutes, s.Cycles, s.MinTemp, s.MaxTemp)
}
