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

package analyze

import (
	"fmt"

	"github.com/TheCacophonyProject/ac-trend/tempdata"
	"github.com/spf13/viper"
)

const (
	outlierThresholdKey = "outlier-threshold"
	smoothingWeightKey  = "smoothing-weight"
	reportEventsKey     = "report-events"
)

type Config struct {
	OutlierThreshold float64 `mapstructure:"outlier-threshold"`
	SmoothingWeight  float64 `mapstructure:"smoothing-weight"`
	ReportEvents     bool    `mapstructure:"report-events"`
}

func DefaultConfig() Config {
	p := tempdata.DefaultParams()
	return Config{
		OutlierThreshold: p.OutlierThreshold,
		SmoothingWeight:  p.SmoothingWeight,
	}
}

// ParseConfig reads configFile if one is given. Missing keys keep their defaults.
func ParseConfig(configFile string) (Config, error) {
	v := viper.New()
	d := DefaultConfig()
	v.SetDefault(outlierThresholdKey, d.OutlierThreshold)
	v.SetDefault(smoothingWeightKey, d.SmoothingWeight)
	v.SetDefault(reportEventsKey, d.ReportEvents)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config '%s': %v", configFile, err)
		}
	}

	c := Config{}
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %v", err)
	}
	return c, nil
}

// Params applies any command line overrides and checks the result.
func (c Config) Params(args Args) (tempdata.Params, error) {
	p := tempdata.Params{
		OutlierThreshold: c.OutlierThreshold,
		SmoothingWeight:  c.SmoothingWeight,
	}
	if args.OutlierThreshold != nil {
		p.OutlierThreshold = *args.OutlierThreshold
	}
	if args.SmoothingWeight != nil {
		p.SmoothingWeight = *args.SmoothingWeight
	}
	return p, p.Validate()
}
