package sensors

import "ev3dev/ev3dev"

var touchDriverNames = []string{"lego-ev3-touch", "lego-nxt-touch"}

// TouchSensor is the LEGO EV3 or NXT touch sensor.
type TouchSensor struct {
	Sensor
}

// NewTouchSensor returns the touch sensor at the given port.
func NewTouchSensor(port Port) (TouchSensor, error) {
	sensor, err := FindSensor(port, touchDriverNames)
	if err != nil {
		return TouchSensor{}, err
	}
	return TouchSensor{sensor}, nil
}

// FindTouchSensor returns the touch sensor regardless of port. It
// fails when none or more than one is connected.
func FindTouchSensor() (TouchSensor, error) {
	instance, err := ev3dev.FindByDriver(Class, touchDriverNames)
	if err != nil {
		return TouchSensor{}, err
	}
	return TouchSensor{NewSensor(instance)}, nil
}

// IsPressed reports whether the button is currently pressed.
func (s TouchSensor) IsPressed() (bool, error) {
	attr, err := s.Attribute("value0")
	if err != nil {
		return false, err
	}
	return attr.BoolValue()
}
