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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

const temperatureLogTime = "2006-01-02 15:04:05"

// ReadTemperatureLogFile loads one day from the temperature sensor log.
func ReadTemperatureLogFile(fileName string, day time.Time) (*Series, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to open temperature log: %w", err)
	}
	defer file.Close()
	return ReadTemperatureLog(file, day)
}

// ReadTemperatureLog loads the readings of day from a sensor log with rows of
//
//	2006-01-02 15:04:05, temperature, humidity
//
// Timestamps are read in day's location. Rows from other days and rows that
// can't be parsed are skipped. When a minute has several samples the last one
// is kept.
func ReadTemperatureLog(r io.Reader, day time.Time) (*Series, error) {
	year, month, date := day.Date()
	s := &Series{}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read temperature log: %w", err)
		}
		if len(record) < 2 {
			continue
		}

		t, err := time.ParseInLocation(temperatureLogTime, strings.TrimSpace(record[0]), day.Location())
		if err != nil {
			continue
		}
		y, m, d := t.Date()
		if y != year || m != month || d != date {
			continue
		}
		temp, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			continue
		}
		index, _ := MinuteIndex(t.Hour(), t.Minute())
		s.Set(index, temp)
	}
	return s, nil
}
