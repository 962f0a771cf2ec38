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
)

// WriteTempDataToFile writes the valid readings of s to fileName, replacing it.
func WriteTempDataToFile(fileName string, s *Series) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := WriteTempData(file, s); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// WriteTempData writes every valid reading using the format:
//
//	HH:MM	TT.TTT	AC
//
// TT.TTT is the filtered temperature with three decimal digits and AC is 1
// when the AC was on and 0 when it was off. Fields are tab separated.
func WriteTempData(w io.Writer, s *Series) error {
	bw := bufio.NewWriter(w)
	for k, r := range s {
		if !r.Valid || !r.Present {
			continue
		}
		ac := 0
		if r.Status {
			ac = 1
		}
		if _, err := fmt.Fprintf(bw, "%s\t%.3f\t%d\n", Clock(k), r.Temperature, ac); err != nil {
			return fmt.Errorf("failed to write temperature data: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write temperature data: %w", err)
	}
	return nil
}
