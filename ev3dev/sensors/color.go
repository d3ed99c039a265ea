package sensors

import (
	"fmt"
	"sync"

	"ev3dev/ev3dev"
)

// Modes of the EV3 color sensor.
const (
	// ModeColReflect measures reflected light; sets the LED to red.
	ModeColReflect = "COL-REFLECT"
	// ModeColAmbient measures ambient light; sets the LED to dim blue.
	ModeColAmbient = "COL-AMBIENT"
	// ModeColColor detects a color index; cycles all LEDs rapidly.
	ModeColColor = "COL-COLOR"
	// ModeRefRaw reads raw reflected values; sets the LED to red.
	ModeRefRaw = "REF-RAW"
	// ModeRGBRaw reads raw color components; cycles all LEDs rapidly.
	ModeRGBRaw = "RGB-RAW"
	// ModeColCal is the undocumented calibration mode.
	ModeColCal = "COL-CAL"
)

var colorDriverNames = []string{"lego-ev3-color"}

// binDataInfo caches num_values and bin_data_format, which are fixed
// per mode and otherwise re-read on every binary sample. Copies of a
// ColorSensor share the cell.
type binDataInfo struct {
	mu        sync.RWMutex
	loaded    bool
	numValues int
	format    ev3dev.BinDataFormat
}

// ColorSensor is the LEGO EV3 color sensor.
type ColorSensor struct {
	Sensor

	bin *binDataInfo
}

// NewColorSensor returns the color sensor at the given port.
func NewColorSensor(port Port) (ColorSensor, error) {
	sensor, err := FindSensor(port, colorDriverNames)
	if err != nil {
		return ColorSensor{}, err
	}
	return ColorSensor{Sensor: sensor, bin: &binDataInfo{}}, nil
}

// FindColorSensor returns the color sensor regardless of port. It
// fails when none or more than one is connected.
func FindColorSensor() (ColorSensor, error) {
	instance, err := ev3dev.FindByDriver(Class, colorDriverNames)
	if err != nil {
		return ColorSensor{}, err
	}
	return ColorSensor{Sensor: NewSensor(instance), bin: &binDataInfo{}}, nil
}

func (s ColorSensor) SetModeColReflect() error { return s.SetMode(ModeColReflect) }
func (s ColorSensor) SetModeColAmbient() error { return s.SetMode(ModeColAmbient) }
func (s ColorSensor) SetModeColColor() error   { return s.SetMode(ModeColColor) }
func (s ColorSensor) SetModeRefRaw() error     { return s.SetMode(ModeRefRaw) }
func (s ColorSensor) SetModeRGBRaw() error     { return s.SetMode(ModeRGBRaw) }

// Color returns value0 for the COL-REFLECT, COL-AMBIENT, COL-COLOR
// and REF-RAW modes.
func (s ColorSensor) Color() (int, error) {
	return s.Value(0)
}

// Red returns the red component of the detected color, 0 to 1020.
func (s ColorSensor) Red() (int, error) {
	return s.Value(0)
}

// Green returns the green component of the detected color, 0 to 1020.
func (s ColorSensor) Green() (int, error) {
	return s.Value(1)
}

// Blue returns the blue component of the detected color, 0 to 1020.
func (s ColorSensor) Blue() (int, error) {
	return s.Value(2)
}

// RGB returns the red, green and blue components of the detected
// color, each 0 to 1020.
func (s ColorSensor) RGB() (r, g, b int, err error) {
	if r, err = s.Red(); err != nil {
		return 0, 0, 0, err
	}
	if g, err = s.Green(); err != nil {
		return 0, 0, 0, err
	}
	if b, err = s.Blue(); err != nil {
		return 0, 0, 0, err
	}
	return r, g, b, nil
}

// RawRGB reads the color components from the bin_data block in one
// filesystem access instead of three. The color sensor reports its
// block as s16; any other format fails with an
// *ev3dev.UnsupportedFormatError.
func (s ColorSensor) RawRGB() (r, g, b int, err error) {
	count, format, err := s.binInfo()
	if err != nil {
		return 0, 0, 0, err
	}
	if format != ev3dev.S16 {
		return 0, 0, 0, &ev3dev.UnsupportedFormatError{Format: format.String()}
	}
	if count < 3 {
		return 0, 0, 0, fmt.Errorf("color sensor reports %d values, need 3", count)
	}

	data, err := s.BinData()
	if err != nil {
		return 0, 0, 0, err
	}

	values, err := format.DecodeInts(data, count)
	if err != nil {
		return 0, 0, 0, err
	}
	return int(values[0]), int(values[1]), int(values[2]), nil
}

// binInfo returns the cached num_values and bin_data_format, reading
// them once on first use. A lost race re-reads the attributes; both
// readers store the same result.
func (s ColorSensor) binInfo() (int, ev3dev.BinDataFormat, error) {
	s.bin.mu.RLock()
	if s.bin.loaded {
		count, format := s.bin.numValues, s.bin.format
		s.bin.mu.RUnlock()
		return count, format, nil
	}
	s.bin.mu.RUnlock()

	count, err := s.NumValues()
	if err != nil {
		return 0, 0, err
	}
	format, err := s.BinDataFormat()
	if err != nil {
		return 0, 0, err
	}

	s.bin.mu.Lock()
	s.bin.numValues = count
	s.bin.format = format
	s.bin.loaded = true
	s.bin.mu.Unlock()

	return count, format, nil
}
