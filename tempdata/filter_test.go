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

const tolerance = 1e-9

func TestLowPassFilterRecurrence(t *testing.T) {
	raw := []float64{72.4, 73.1, 71.8, 70.2, 70.9, 69.5, 68.0}
	start := 100
	s := &Series{}
	for i, v := range raw {
		s.Set(start+i, v)
	}

	LowPassFilter(s)

	y := raw[0]
	assert.Equal(t, raw[0], s[start].Temperature, "first reading of a run is not smoothed")
	for i := 1; i < len(raw); i++ {
		y = 0.925*y + 0.075*raw[i]
		assert.InDelta(t, y, s[start+i].Temperature, tolerance, "minute %s", Clock(start+i))
	}
}

func TestLowPassFilterRestartsAfterGap(t *testing.T) {
	s := &Series{}
	s.Set(0, 70)
	s.Set(1, 72)
	s.Set(2, 74)
	s.Set(4, 60)
	s.Set(5, 62)

	LowPassFilter(s)

	assert.Equal(t, 70.0, s[0].Temperature)
	assert.InDelta(t, 70.15, s[1].Temperature, tolerance)
	assert.InDelta(t, 0.925*70.15+0.075*74, s[2].Temperature, tolerance)
	assert.Equal(t, 60.0, s[4].Temperature)
	assert.InDelta(t, 0.925*60+0.075*62, s[5].Temperature, tolerance)
}

func TestLowPassFilterSkipsInvalid(t *testing.T) {
	s := &Series{}
	s.Set(0, 70)
	s.Set(1, 90)
	s[1].Valid = false
	s.Set(2, 71)

	LowPassFilter(s)

	assert.Equal(t, 90.0, s[1].Temperature)
	assert.Equal(t, 71.0, s[2].Temperature)
}

func TestLowPassFilterWeights(t *testing.T) {
	prev, cur := 60.0, 60.3
	w, in := 0.9250, 0.0750

	s := &Series{}
	s.Set(0, prev)
	s.Set(1, cur)
	LowPassFilter(s)
	assert.Equal(t, float64(w*prev)+float64(in*cur), s[1].Temperature)

	w = 0.5
	s = &Series{}
	s.Set(0, prev)
	s.Set(1, cur)
	Params{OutlierThreshold: 5, SmoothingWeight: w}.LowPassFilter(s)
	assert.Equal(t, float64(w*prev)+float64((1-w)*cur), s[1].Temperature)
}

func TestLowPassFilterLeavesFlagsAlone(t *testing.T) {
	s := &Series{}
	s.Set(0, 70)
	s.Set(1, 71)
	s[1].Status = true
	before := *s

	LowPassFilter(s)

	for k := range s {
		assert.Equal(t, before[k].Valid, s[k].Valid)
		assert.Equal(t, before[k].Present, s[k].Present)
		assert.Equal(t, before[k].Status, s[k].Status)
	}
}
