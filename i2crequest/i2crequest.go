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

// Package i2crequest makes I2C transactions through the i2c dbus service.
package i2crequest

import (
	"errors"
	"sync"

	"github.com/godbus/dbus"
)

const (
	dbusName = "org.cacophony.i2c"
	dbusPath = "/org/cacophony/i2c"
)

// TxResponse is a canned reply used when mocking transactions.
type TxResponse struct {
	Response []byte
	Err      error
}

var ErrNoMockResponse = errors.New("no mock tx response left")

var (
	mockMu        sync.Mutex
	mocking       bool
	mockResponses []TxResponse
)

// MockTxResponses makes every following Tx call return the next response
// from responses instead of calling the dbus service.
func MockTxResponses(responses []TxResponse) {
	mockMu.Lock()
	defer mockMu.Unlock()
	mocking = true
	mockResponses = append([]TxResponse(nil), responses...)
}

// StopMocking sends transactions to the dbus service again.
func StopMocking() {
	mockMu.Lock()
	defer mockMu.Unlock()
	mocking = false
	mockResponses = nil
}

// MockResponsesLeft is the number of mocked responses not yet used.
func MockResponsesLeft() int {
	mockMu.Lock()
	defer mockMu.Unlock()
	return len(mockResponses)
}

func nextMockResponse() ([]byte, error) {
	if len(mockResponses) == 0 {
		return nil, ErrNoMockResponse
	}
	r := mockResponses[0]
	mockResponses = mockResponses[1:]
	return r.Response, r.Err
}

// Tx writes write to the device at address then reads readLen bytes back.
// timeout is in milliseconds.
func Tx(address byte, write []byte, readLen, timeout int) ([]byte, error) {
	mockMu.Lock()
	if mocking {
		defer mockMu.Unlock()
		return nextMockResponse()
	}
	mockMu.Unlock()

	conn, err := dbus.SystemBus()
	if err != nil {
		return nil, err
	}
	obj := conn.Object(dbusName, dbusPath)

	var response []byte
	if err := obj.Call(dbusName+".Tx", 0, address, write, readLen, timeout).Store(&response); err != nil {
		return nil, err
	}
	return response, nil
}

// CheckAddress checks that a device responds at address.
func CheckAddress(address byte, timeout int) error {
	_, err := Tx(address, []byte{0x00}, 1, timeout)
	return err
}
