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

// LowPassFilter smooths runs of valid readings with the default weight.
func LowPassFilter(s *Series) {
	DefaultParams().LowPassFilter(s)
}

// LowPassFilter applies a single pole low-pass filter to each run of
// consecutive valid readings:
//
//	out(0) = in(0)
//	out(n) = w*out(n-1) + (1-w)*in(n)
//
// With the default weight the coefficients are exactly 0.9250 and 0.0750.
//
// A reading whose previous minute is invalid is left unchanged, which restarts
// the filter at the start of every run.
func (p Params) LowPassFilter(s *Series) {
	w := p.SmoothingWeight
	in := p.inputWeight()
	for k := 1; k < MinPerDay; k++ {
		if s[k].Valid && s[k-1].Valid {
			// Conversions stop the compiler fusing into an FMA so output matches on every arch.
			s[k].Temperature = float64(w*s[k-1].Temperature) + float64(in*s[k].Temperature)
		}
	}
}
