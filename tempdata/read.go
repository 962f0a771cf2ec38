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
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
)

// HH:MM then whitespace then a decimal temperature.
var dayLineRegexp = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})\s+([-+]?(?:\d+\.?\d*|\.\d+))\s*$`)

// ReadTempDataFromFile reads a day file. See ReadTempData for the format.
func ReadTempDataFromFile(fileName string) (*Series, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to open temperature data: %w", err)
	}
	defer file.Close()
	return ReadTempData(file)
}

// ReadTempData reads temperatures line by line using the format:
//
//	HH:MM TT.T
//
// HH:MM is the time the temperature was recorded in 24 hour format, followed
// by one or more whitespace characters and the temperature. Lines that don't
// match are ignored. Minutes with no line are left absent.
func ReadTempData(r io.Reader) (*Series, error) {
	s := &Series{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		index, temp, ok := parseDayLine(scanner.Text())
		if !ok {
			continue
		}
		s.Set(index, temp)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read temperature data: %w", err)
	}
	return s, nil
}

func parseDayLine(line string) (int, float64, bool) {
	m := dayLineRegexp.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	index, ok := MinuteIndex(hour, minute)
	if !ok {
		return 0, 0, false
	}
	temp, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return 0, 0, false
	}
	return index, temp, true
}
