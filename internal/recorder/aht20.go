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
	"math"
	"time"

	"github.com/TheCacophonyProject/ac-trend/i2crequest"
	"github.com/sigurn/crc8"
)

const (
	AHT20Address     = 0x38
	AHT20_BUSY       = 1 << 7
	AHT20_CALIBRATED = 1 << 3
	AHT20_STATUS_REG = 0x71

	maxReadingAttempts = 5
	maxReadyChecks     = 3
	txTimeoutMs        = 3000
)

var (
	errBadCRC   = errors.New("bad crc")
	errNotReady = fmt.Errorf("temperature reading was not ready after %d tries", maxReadyChecks)
)

var crcTable = crc8.MakeTable(crc8.Params{
	Poly:   0x31, // Polynomial 1 + x^4 + x^5 + x^8
	Init:   0xFF,
	RefIn:  false,
	RefOut: false,
	XorOut: 0x00,
})

func calculateCRC(data []byte) byte {
	return crc8.Checksum(data, crcTable)
}

// makeReading returns the temperature in Celsius and the relative humidity.
//
// Some sensors don't have a working CRC (it always reads 0xFF). In that case a
// second reading is made and accepted if it is close to the first one.
func makeReading() (float32, float32, error) {
	temp, humidity, crc, err := makeReadingWithRetries()
	if !errors.Is(err, errBadCRC) || crc != 0xFF {
		return temp, humidity, err
	}

	previousTemp := temp
	previousHumidity := humidity
	temp, humidity, crc, err = makeReadingWithRetries()
	if errors.Is(err, errBadCRC) && crc == 0xFF {
		log.Debug("No CRC, checking with multiple readings")
		if math.Abs(float64(temp-previousTemp)) > 1 || math.Abs(float64(humidity-previousHumidity)) > 1 {
			log.Errorf("CRC failed, got 0X%X, temp: %.2f, humidity: %.2f", crc, temp, humidity)
			return 0, 0, errBadCRC
		}
		return temp, humidity, nil
	}
	return temp, humidity, err
}

func makeReadingWithRetries() (float32, float32, uint8, error) {
	var temp, humidity float32
	var crc uint8
	var err error
	for i := 0; i < maxReadingAttempts; i++ {
		temp, humidity, crc, err = makeReadingAttempt()
		if err == nil || errors.Is(err, errBadCRC) {
			break
		}
		log.Debug("Error in attempt for getting a reading: ", err)
		sleepFn(5 * time.Second)
	}
	return temp, humidity, crc, err
}

func makeReadingAttempt() (float32, float32, uint8, error) {
	// Trigger reading by sending AC 33 00
	_, err := i2crequest.Tx(AHT20Address, []byte{0xAC, 0x33, 0x00}, 0, txTimeoutMs)
	if err != nil {
		return 0, 0, 0, err
	}

	// Datasheet says the measurement takes at least 75ms.
	ready := false
	var rawData []byte
	for i := 0; i < maxReadyChecks; i++ {
		sleepFn(100 * time.Millisecond)
		rawData, err = i2crequest.Tx(AHT20Address, []byte{AHT20_STATUS_REG}, 7, txTimeoutMs)
		if err != nil {
			return 0, 0, 0, err
		}
		if len(rawData) > 0 && rawData[0]&AHT20_BUSY == 0x00 {
			ready = true
			break
		}
		log.Debug("Temperature reading is not yet ready")
	}
	if !ready {
		return 0, 0, 0, errNotReady
	}

	if len(rawData) != 7 {
		return 0, 0, 0, fmt.Errorf("reading length: %d", len(rawData))
	}

	humidityRaw := uint32(rawData[1])<<12 | uint32(rawData[2])<<4 | uint32(rawData[3]>>4)
	humidity := float32(humidityRaw) / float32(1<<20) * 100

	temperatureRaw := uint32(rawData[3]&0x0F)<<16 | uint32(rawData[4])<<8 | uint32(rawData[5])
	temp := float32(temperatureRaw)/float32(1<<20)*200 - 50

	crc := calculateCRC(rawData[:6])
	if rawData[6] != crc {
		return temp, humidity, rawData[6], errBadCRC
	}
	return temp, humidity, crc, nil
}

// checkCalibration triggers a calibration if the sensor reports it isn't calibrated.
func checkCalibration() error {
	var err error
	for i := 0; i < maxReadingAttempts; i++ {
		err = checkCalibrationAttempt()
		if err == nil {
			return nil
		}
		log.Debug("Error in attempt for checking calibration: ", err)
		sleepFn(5 * time.Second)
	}
	return err
}

func checkCalibrationAttempt() error {
	rawData, err := i2crequest.Tx(AHT20Address, []byte{AHT20_STATUS_REG}, 7, txTimeoutMs)
	if err != nil {
		return err
	}
	if len(rawData) > 0 && rawData[0]&AHT20_CALIBRATED == AHT20_CALIBRATED {
		return nil
	}

	// Trigger a reset/calibration by sending BE 08 00
	log.Debug("Device is not calibrated. Triggering a manual calibration.")
	if _, err := i2crequest.Tx(AHT20Address, []byte{0xBE, 0x08, 0x00}, 0, txTimeoutMs); err != nil {
		return err
	}
	sleepFn(100 * time.Millisecond)

	rawData, err = i2crequest.Tx(AHT20Address, []byte{AHT20_STATUS_REG}, 7, txTimeoutMs)
	if err != nil {
		return err
	}
	if len(rawData) > 0 && rawData[0]&AHT20_CALIBRATED == AHT20_CALIBRATED {
		return nil
	}
	return errors.New("calibration failed")
}
