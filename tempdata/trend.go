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

// TrendExtraction sets the AC status of every valid reading. Trend extraction
// restarts at each run of valid readings:
//
//  1. The first reading of a run is Off.
//  2. After an Off reading the AC turns On when the temperature dropped from
//     the previous minute and the next minute is valid and lower again.
//  3. After an On reading the AC stays On while the temperature doesn't rise.
//
// Invalid readings are skipped and their status is left alone.
func TrendExtraction(s *Series) {
	s[0].Status = false
	for k := 1; k < MinPerDay; k++ {
		cur := &s[k]
		prev := s[k-1]
		if !cur.Valid {
			continue
		}
		switch {
		case !prev.Valid:
			cur.Status = false
		case !prev.Status:
			next, ok := s.At(k + 1)
			cur.Status = cur.Temperature < prev.Temperature &&
				ok && next.Valid && next.Temperature < cur.Temperature
		default:
			cur.Status = cur.Temperature <= prev.Temperature
		}
	}
}
