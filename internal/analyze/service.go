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
	"encoding/json"
	"errors"
	"runtime"
	"strings"
	"sync"

	"github.com/TheCacophonyProject/ac-trend/tempdata"
	"github.com/godbus/dbus"
	"github.com/godbus/dbus/introspect"
)

const (
	dbusName = "org.cacophony.ACTrend"
	dbusPath = "/org/cacophony/ACTrend"
)

var errNoAnalysis = errors.New("no analysis has been run")

type service struct {
	params tempdata.Params
	report bool

	mu   sync.Mutex
	last *tempdata.Summary
}

func startService(params tempdata.Params, report bool) error {
	conn, err := dbus.SystemBus()
	if err != nil {
		return err
	}
	reply, err := conn.RequestName(dbusName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return err
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return errors.New("name already taken")
	}

	s := &service{
		params: params,
		report: report,
	}
	conn.Export(s, dbusPath, dbusName)
	conn.Export(genIntrospectable(s), dbusPath, "org.freedesktop.DBus.Introspectable")
	return nil
}

// Analyze processes the day file at input, writes the result to output and
// returns the summary as JSON.
func (s *service) Analyze(input, output string) (string, *dbus.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum, err := analyzeFile(s.params, input, output)
	if err != nil {
		log.Error(err)
		return "", dbusErr(err)
	}
	s.last = &sum
	if s.report {
		if err := reportSummary(input, sum); err != nil {
			log.Error("Failed to report summary: ", err)
		}
	}
	return marshalSummary(sum)
}

// LastSummary returns the summary of the last analysis as JSON.
func (s *service) LastSummary() (string, *dbus.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last == nil {
		return "", dbusErr(errNoAnalysis)
	}
	return marshalSummary(*s.last)
}

func marshalSummary(sum tempdata.Summary) (string, *dbus.Error) {
	data, err := json.Marshal(sum)
	if err != nil {
		return "", dbusErr(err)
	}
	return string(data), nil
}

func genIntrospectable(v interface{}) introspect.Introspectable {
	node := &introspect.Node{
		Interfaces: []introspect.Interface{{
			Name:    dbusName,
			Methods: introspect.Methods(v),
		}},
	}
	return introspect.NewIntrospectable(node)
}

func dbusErr(err error) *dbus.Error {
	if err == nil {
		return nil
	}
	return &dbus.Error{
		Name: dbusName + "." + getCallerName(),
		Body: []interface{}{err.Error()},
	}
}

func getCallerName() string {
	fpcs := make([]uintptr, 1)
	n := runtime.Callers(3, fpcs)
	if n == 0 {
		return ""
	}
	caller := runtime.FuncForPC(fpcs[0] - 1)
	if caller == nil {
		return ""
	}
	funcNames := strings.Split(caller.Name(), ".")
	return funcNames[len(funcNames)-1]
}
