package sensors

import (
	"fmt"

	"ev3dev/ev3dev"
)

// Modes of the EV3 infrared sensor.
const (
	// ModeIRProx measures proximity to an obstacle, 0 to 100 percent.
	ModeIRProx = "IR-PROX"
	// ModeIRSeek locates the beacon on up to four channels.
	ModeIRSeek = "IR-SEEK"
	// ModeIRRemote decodes remote control button presses.
	ModeIRRemote = "IR-REMOTE"
	// ModeIRRemA decodes button presses in the alternative encoding.
	ModeIRRemA = "IR-REM-A"
	// ModeIRCal is the undocumented calibration mode.
	ModeIRCal = "IR-CAL"
)

var infraredDriverNames = []string{"lego-ev3-ir"}

// InfraredSensor is the LEGO EV3 infrared sensor.
type InfraredSensor struct {
	Sensor
}

// NewInfraredSensor returns the infrared sensor at the given port.
func NewInfraredSensor(port Port) (InfraredSensor, error) {
	sensor, err := FindSensor(port, infraredDriverNames)
	if err != nil {
		return InfraredSensor{}, err
	}
	return InfraredSensor{sensor}, nil
}

// FindInfraredSensor returns the infrared sensor regardless of port.
// It fails when none or more than one is connected.
func FindInfraredSensor() (InfraredSensor, error) {
	instance, err := ev3dev.FindByDriver(Class, infraredDriverNames)
	if err != nil {
		return InfraredSensor{}, err
	}
	return InfraredSensor{NewSensor(instance)}, nil
}

func (s InfraredSensor) SetModeProximity() error { return s.SetMode(ModeIRProx) }
func (s InfraredSensor) SetModeSeek() error      { return s.SetMode(ModeIRSeek) }
func (s InfraredSensor) SetModeRemote() error    { return s.SetMode(ModeIRRemote) }

// Proximity returns the distance to an obstacle, 0 (close) to 100
// (far), for the IR-PROX mode.
func (s InfraredSensor) Proximity() (int, error) {
	return s.Value(0)
}

// SeekHeading returns the beacon heading on the given channel (1 to
// 4) for the IR-SEEK mode: -25 far left, 0 straight ahead, 25 far
// right.
func (s InfraredSensor) SeekHeading(channel int) (int, error) {
	if channel < 1 || channel > 4 {
		return 0, fmt.Errorf("beacon channel %d out of range 1..4", channel)
	}
	return s.Value((channel - 1) * 2)
}

// SeekDistance returns the beacon distance on the given channel (1 to
// 4) for the IR-SEEK mode: 0 to 100, or -128 when no beacon is seen.
func (s InfraredSensor) SeekDistance(channel int) (int, error) {
	if channel < 1 || channel > 4 {
		return 0, fmt.Errorf("beacon channel %d out of range 1..4", channel)
	}
	return s.Value((channel-1)*2 + 1)
}
