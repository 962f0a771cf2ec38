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
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/TheCacophonyProject/ac-trend/internal/logging"
	"github.com/TheCacophonyProject/ac-trend/tempdata"
	arg "github.com/alexflint/go-arg"
)

const dateFormat = "2006-01-02"

type Args struct {
	Service          *subcommand `arg:"subcommand:service" help:"Start the dbus service."`
	Input            string      `arg:"-i, --input" help:"Day file with 'HH:MM temperature' lines"`
	LogFile          string      `arg:"--log-file" help:"Read the day from a temperature sensor log instead of a day file"`
	Date             string      `arg:"--date" help:"Day to read from the sensor log, format 2006-01-02. Defaults to yesterday"`
	Output           string      `arg:"-o, --output" help:"File to write the filtered temperatures and AC status to"`
	ConfigFile       string      `arg:"--config-file" help:"Config file with the filter settings"`
	OutlierThreshold *float64    `arg:"--outlier-threshold" help:"Readings changing more than this from the previous minute are rejected"`
	SmoothingWeight  *float64    `arg:"--smoothing-weight" help:"Weight of the previous filtered temperature in the low-pass filter"`
	Report           bool        `arg:"--report" help:"Report a summary event"`
	logging.LogArgs
}

type subcommand struct {
}

var (
	log     = logging.NewLogger("info")
	version = "<not set>"
)

var defaultArgs = Args{}

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

func Run(inputArgs []string, ver string) error {
	version = ver
	args, err := procArgs(inputArgs)
	if err != nil {
		return fmt.Errorf("failed to parse args: %v", err)
	}

	log = logging.NewLogger(args.LogLevel)

	log.Infof("Running version: %s", version)

	conf, err := ParseConfig(args.ConfigFile)
	if err != nil {
		return err
	}
	params, err := conf.Params(args)
	if err != nil {
		return err
	}
	log.Debugf("Outlier threshold: %v, smoothing weight: %v", params.OutlierThreshold, params.SmoothingWeight)
	report := args.Report || conf.ReportEvents

	if args.Service != nil {
		log.Debug("Starting AC trend DBus service.")
		if err := startService(params, report); err != nil {
			return err
		}
		for {
			time.Sleep(time.Second)
		}
	}

	return runAnalysis(args, params, report)
}

func runAnalysis(args Args, params tempdata.Params, report bool) error {
	if args.Output == "" {
		return errors.New("no output file given")
	}

	if args.Input != "" && args.LogFile != "" {
		return errors.New("only one of --input and --log-file can be given")
	}

	var sum tempdata.Summary
	var source string
	var err error
	switch {
	case args.Input != "":
		source = args.Input
		sum, err = analyzeFile(params, args.Input, args.Output)
	case args.LogFile != "":
		var day time.Time
		day, err = parseDay(args.Date, time.Now())
		if err != nil {
			return err
		}
		source = args.LogFile + " " + day.Format(dateFormat)
		sum, err = analyzeLog(params, args.LogFile, day, args.Output)
	default:
		return errors.New("no input given, use --input or --log-file")
	}
	if err != nil {
		return err
	}

	log.Info(sum)
	if sum.Rejected > 0 {
		log.Warnf("%d readings rejected as erroneous", sum.Rejected)
	}
	if report {
		return reportSummary(source, sum)
	}
	return nil
}

// parseDay parses a YYYY-MM-DD date in local time. An empty date is the day before now.
func parseDay(date string, now time.Time) (time.Time, error) {
	if date == "" {
		y, m, d := now.AddDate(0, 0, -1).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), nil
	}
	day, err := time.ParseInLocation(dateFormat, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s': %v", date, err)
	}
	return day, nil
}

func analyzeFile(params tempdata.Params, input, output string) (tempdata.Summary, error) {
	log.Debugf("Reading temperatures from '%s'", input)
	s, err := tempdata.ReadTempDataFromFile(input)
	if err != nil {
		return tempdata.Summary{}, err
	}
	return process(params, s, output)
}

func analyzeLog(params tempdata.Params, logFile string, day time.Time, output string) (tempdata.Summary, error) {
	log.Debugf("Reading %s from temperature log '%s'", day.Format(dateFormat), logFile)
	s, err := tempdata.ReadTemperatureLogFile(logFile, day)
	if err != nil {
		return tempdata.Summary{}, err
	}
	return process(params, s, output)
}

func process(params tempdata.Params, s *tempdata.Series, output string) (tempdata.Summary, error) {
	params.Process(s)
	if err := tempdata.WriteTempDataToFile(output, s); err != nil {
		return tempdata.Summary{}, err
	}
	log.Debugf("Wrote results to '%s'", output)
	return tempdata.Summarize(s), nil
}
