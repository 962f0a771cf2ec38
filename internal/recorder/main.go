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

package recorder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/TheCacophonyProject/ac-trend/i2crequest"
	"github.com/TheCacophonyProject/ac-trend/internal/logging"
	arg "github.com/alexflint/go-arg"
)

const defaultDayDir = "/var/log/ac-trend"

var (
	version = "<not set>"
	log     = logging.NewLogger("info")
	sleepFn = time.Sleep
	nowFn   = time.Now
)

type Args struct {
	Dir               string `arg:"--dir" help:"Directory the day files are written to"`
	SampleRateSeconds int    `arg:"--sample-rate" help:"Sample rate in seconds"`
	Count             int    `arg:"--count" help:"Stop after this many samples, 0 to keep sampling"`
	Fahrenheit        bool   `arg:"--fahrenheit" help:"Record temperatures in Fahrenheit"`
	LogRateMinutes    int    `arg:"--log-rate" help:"Log rate in minutes"`
	logging.LogArgs
}

var defaultArgs = Args{
	Dir:               defaultDayDir,
	SampleRateSeconds: 60,
	LogRateMinutes:    5,
}

func procArgs(input []string) (Args, error) {
	args := defaultArgs

	parser, err := arg.NewParser(arg.Config{}, &args)
	if err != nil {
		return Args{}, err
	}
	err = parser.Parse(input)
	if errors.Is(err, arg.ErrHelp) {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if errors.Is(err, arg.ErrVersion) {
		fmt.Println(version)
		os.Exit(0)
	}
	return args, err
}

// Run samples the temperature sensor and appends each reading to the day
// file for the time it was taken, in the format read by tempdata.ReadTempData.
func Run(inputArgs []string, ver string) error {
	version = ver
	args, err := procArgs(inputArgs)
	if err != nil {
		return fmt.Errorf("failed to parse args: %v", err)
	}

	log = logging.NewLogger(args.LogLevel)
	log.Info("Running version: ", version)

	return record(args)
}

func record(args Args) error {
	if args.SampleRateSeconds <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", args.SampleRateSeconds)
	}
	if err := os.MkdirAll(args.Dir, 0755); err != nil {
		return err
	}

	if err := i2crequest.CheckAddress(AHT20Address, txTimeoutMs); err != nil {
		return fmt.Errorf("no AHT20 found at 0x%x: %v", AHT20Address, err)
	}

	log.Info("Checking AHT20 calibration")
	if err := checkCalibration(); err != nil {
		return fmt.Errorf("failed to calibrate AHT20: %v", err)
	}

	sampleRate := time.Duration(args.SampleRateSeconds) * time.Second
	logRate := time.Duration(args.LogRateMinutes) * time.Minute
	lastLogTime := time.Time{}

	for i := 0; args.Count == 0 || i < args.Count; i++ {
		if i > 0 {
			sleepFn(sampleRate)
		}
		temp, humidity, err := makeReading()
		if err != nil {
			return err
		}
		now := nowFn()
		if now.Sub(lastLogTime) > logRate {
			log.Infof("Temp: %.2f, Humidity: %.2f", temp, humidity)
			lastLogTime = now
		} else {
			log.Debugf("Temp: %.2f, Humidity: %.2f", temp, humidity)
		}

		value := float64(temp)
		if args.Fahrenheit {
			value = celsiusToFahrenheit(value)
		}
		if err := appendReading(args.Dir, now, value); err != nil {
			return err
		}
	}
	return nil
}

func celsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// dayFileName is the day file a reading taken at t belongs to.
func dayFileName(dir string, t time.Time) string {
	return filepath.Join(dir, t.Format("2006-01-02")+".txt")
}

func appendReading(dir string, t time.Time, temp float64) error {
	file, err := os.OpenFile(dayFileName(dir, t), os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	line := fmt.Sprintf("%s %.2f\n", t.Format("15:04"), temp)
	if _, err := file.WriteString(line); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
