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

import "math"

// RemoveOutliers marks readings invalid when they differ from the previous
// minute by more than the default threshold.
func RemoveOutliers(s *Series) {
	DefaultParams().RemoveOutliers(s)
}

// RemoveOutliers marks a reading as invalid when it is more than
// p.OutlierThreshold above or below the reading of the previous minute and
// that previous reading is valid. A reading that follows a missing minute is
// always valid. The first minute of the day is left as loaded.
//
// A previous reading that is present but already invalid neither validates
// nor invalidates the current one.
func (p Params) RemoveOutliers(s *Series) {
	for k := 1; k < MinPerDay; k++ {
		cur := &s[k]
		prev := &s[k-1]
		if !cur.Present {
			continue
		}
		if !prev.Present {
			cur.Valid = true
		} else if math.Abs(cur.Temperature-prev.Temperature) > p.OutlierThreshold && prev.Valid {
			cur.Valid = false
		}
	}
}
