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
	"time"

	"github.com/TheCacophonyProject/ac-trend/tempdata"
	"github.com/TheCacophonyProject/event-reporter/v3/eventclient"
)

const summaryEventType = "acCycleSummary"

var addEvent = eventclient.AddEvent

func reportSummary(source string, sum tempdata.Summary) error {
	log.Println("Reporting", summaryEventType)
	return addEvent(eventclient.Event{
		Timestamp: time.Now(),
		Type:      summaryEventType,
		Details: map[string]interface{}{
			"source":     source,
			"valid":      sum.Valid,
			"rejected":   sum.Rejected,
			"onMinutes":  sum.OnMinutes,
			"cycles":     sum.Cycles,
			"runs":       sum.Runs,
			"firstValid": sum.FirstValid,
			"lastValid":  sum.LastValid,
			"minTemp":    sum.MinTemp,
			"maxTemp":    sum.MaxTemp,
		},
	})
}
