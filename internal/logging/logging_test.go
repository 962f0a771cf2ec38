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

package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLogLevels(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, NewLogger("debug").Level)
	assert.Equal(t, logrus.WarnLevel, NewLogger("warn").Level)
	assert.Equal(t, logrus.ErrorLevel, NewLogger("error").Level)
	assert.Equal(t, logrus.InfoLevel, NewLogger("verbose").Level)
}

func TestFormat(t *testing.T) {
	out := &bytes.Buffer{}
	log := NewLogger("info")
	log.Out = out

	log.Info("Running version: ", "1.0.0")
	log.Debug("hidden")
	log.Warnf("%d readings rejected", 4)

	assert.Equal(t, "[INFO] Running version: 1.0.0\n[WARNING] 4 readings rejected\n", out.String())
}
