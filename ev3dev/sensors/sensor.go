// Package sensors provides access to devices of the lego-sensor
// class: the generic accessors shared by every sensor plus the
// concrete EV3 sensor types with their modes.
package sensors

import (
	"fmt"

	"ev3dev/ev3dev"
)

// Class is the sysfs device class of all lego sensors.
const Class = "lego-sensor"

// Port is one of the four numbered input ports.
type Port int

const (
	In1 Port = iota + 1
	In2
	In3
	In4
)

// Address returns the sysfs address token of the port.
func (p Port) Address() string {
	switch p {
	case In1:
		return "in1"
	case In2:
		return "in2"
	case In3:
		return "in3"
	case In4:
		return "in4"
	}
	return fmt.Sprintf("in?%d", int(p))
}

// ParsePort maps an address token such as "in1" to its port. Unknown
// tokens fail with a *ev3dev.ParseError.
func ParsePort(s string) (Port, error) {
	switch s {
	case "in1":
		return In1, nil
	case "in2":
		return In2, nil
	case "in3":
		return In3, nil
	case "in4":
		return In4, nil
	}
	return 0, &ev3dev.ParseError{Value: s, Want: "sensor port"}
}

// Sensor provides the accessors shared by every sensor type.
type Sensor struct {
	ev3dev.Driver
}

// NewSensor binds the sensor with the given instance name.
func NewSensor(instance string) Sensor {
	return Sensor{ev3dev.NewDriver(Class, instance)}
}

// FindSensor returns the sensor at port whose driver_name is one of
// driverNames.
func FindSensor(port Port, driverNames []string) (Sensor, error) {
	instance, err := ev3dev.FindByPortAndDriver(Class, port, driverNames)
	if err != nil {
		return Sensor{}, err
	}
	return NewSensor(instance), nil
}

func (s Sensor) intAttr(name string) (int, error) {
	attr, err := s.Attribute(name)
	if err != nil {
		return 0, err
	}
	return attr.IntValue()
}

func (s Sensor) stringAttr(name string) (string, error) {
	attr, err := s.Attribute(name)
	if err != nil {
		return "", err
	}
	return attr.Value()
}

// Mode returns the current sensor mode. See the individual sensor
// types for the modes they support.
func (s Sensor) Mode() (string, error) {
	return s.stringAttr("mode")
}

// SetMode switches the sensor to the given mode.
func (s Sensor) SetMode(mode string) error {
	attr, err := s.Attribute("mode")
	if err != nil {
		return err
	}
	return attr.SetValue(mode)
}

// Modes returns the valid modes for the sensor.
func (s Sensor) Modes() ([]string, error) {
	attr, err := s.Attribute("modes")
	if err != nil {
		return nil, err
	}
	return attr.Values()
}

// NumValues returns how many value<N> attributes hold a valid value
// in the current mode.
func (s Sensor) NumValues() (int, error) {
	return s.intAttr("num_values")
}

// Value returns the unscaled raw reading of the value<n> attribute,
// n between 0 and 7.
func (s Sensor) Value(n int) (int, error) {
	if n < 0 || n > 7 {
		return 0, fmt.Errorf("value index %d out of range 0..7", n)
	}
	return s.intAttr(fmt.Sprintf("value%d", n))
}

// Decimals returns the number of decimal places in the value<N>
// attributes for the current mode.
func (s Sensor) Decimals() (int, error) {
	return s.intAttr("decimals")
}

// Units returns the measurement units of the current mode, possibly
// empty.
func (s Sensor) Units() (string, error) {
	return s.stringAttr("units")
}

// FwVersion returns the sensor firmware version where available;
// currently only NXT/I2C sensors report one.
func (s Sensor) FwVersion() (string, error) {
	return s.stringAttr("fw_version")
}

// PollMS returns the polling period in milliseconds.
func (s Sensor) PollMS() (int, error) {
	return s.intAttr("poll_ms")
}

// SetPollMS sets the polling period in milliseconds; 0 disables
// polling. Setting it too high can make input port autodetection
// fail.
func (s Sensor) SetPollMS(ms int) error {
	attr, err := s.Attribute("poll_ms")
	if err != nil {
		return err
	}
	return attr.SetIntValue(ms)
}

// TextValue returns the sensor-specific text reading; sensors without
// text values report an error through the attribute itself.
func (s Sensor) TextValue() (string, error) {
	return s.stringAttr("text_value")
}

// BinData returns the raw reading block behind the value<N>
// attributes. Interpret it with BinDataFormat and NumValues.
func (s Sensor) BinData() ([]byte, error) {
	attr, err := s.Attribute("bin_data")
	if err != nil {
		return nil, err
	}
	return attr.RawData()
}

// BinDataFormat returns the parsed format of the values in the
// bin_data block for the current mode.
func (s Sensor) BinDataFormat() (ev3dev.BinDataFormat, error) {
	token, err := s.stringAttr("bin_data_format")
	if err != nil {
		return 0, err
	}
	return ev3dev.ParseBinDataFormat(token)
}
