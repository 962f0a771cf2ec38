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
	"errors"
	"fmt"
)

const (
	DefaultOutlierThreshold = 5.0
	DefaultSmoothingWeight  = 0.9250
	DefaultInputWeight      = 0.0750
)

// Params tunes the outlier filter and the low-pass filter.
type Params struct {
	// Readings that move more than this from the previous minute are erroneous.
	OutlierThreshold float64
	// Weight given to the previous filtered output. The new reading gets 1 - SmoothingWeight.
	SmoothingWeight float64
}

func DefaultParams() Params {
	return Params{
		OutlierThreshold: DefaultOutlierThreshold,
		SmoothingWeight:  DefaultSmoothingWeight,
	}
}

var (
	errBadThreshold = errors.New("outlier threshold must be positive")
	errBadWeight    = errors.New("smoothing weight must be in [0, 1)")
)

func (p Params) Validate() error {
	if !(p.OutlierThreshold > 0) {
		return fmt.Errorf("%w, got %v", errBadThreshold, p.OutlierThreshold)
	}
	if !(p.SmoothingWeight >= 0 && p.SmoothingWeight < 1) {
		return fmt.Errorf("%w, got %v", errBadWeight, p.SmoothingWeight)
	}
	return nil
}

// inputWeight is the weight given to the new reading. In float64
// 1 - DefaultSmoothingWeight is not DefaultInputWeight.
func (p Params) inputWeight() float64 {
	if p.SmoothingWeight == DefaultSmoothingWeight {
		return DefaultInputWeight
	}
	return 1 - p.SmoothingWeight
}

// Process runs the outlier filter, the low-pass filter and the trend extraction in order.
func (p Params) Process(s *Series) {
	p.RemoveOutliers(s)
	p.LowPassFilter(s)
	TrendExtraction(s)
}

// Process runs the full analysis with the default parameters.
func Process(s *Series) {
	DefaultParams().Process(s)
}
