package sensors

import "ev3dev/ev3dev"

// Modes of the EV3 ultrasonic sensor.
const (
	// ModeUSDistCM measures distance continuously in centimeters.
	ModeUSDistCM = "US-DIST-CM"
	// ModeUSDistIN measures distance continuously in inches.
	ModeUSDistIN = "US-DIST-IN"
	// ModeUSListen listens for other ultrasonic sensors.
	ModeUSListen = "US-LISTEN"
	// ModeUSSiCM takes a single distance measurement in centimeters.
	ModeUSSiCM = "US-SI-CM"
	// ModeUSSiIN takes a single distance measurement in inches.
	ModeUSSiIN = "US-SI-IN"
)

var ultrasonicDriverNames = []string{"lego-ev3-us", "lego-nxt-us"}

// UltrasonicSensor is the LEGO EV3 or NXT ultrasonic sensor.
type UltrasonicSensor struct {
	Sensor
}

// NewUltrasonicSensor returns the ultrasonic sensor at the given port.
func NewUltrasonicSensor(port Port) (UltrasonicSensor, error) {
	sensor, err := FindSensor(port, ultrasonicDriverNames)
	if err != nil {
		return UltrasonicSensor{}, err
	}
	return UltrasonicSensor{sensor}, nil
}

// FindUltrasonicSensor returns the ultrasonic sensor regardless of
// port. It fails when none or more than one is connected.
func FindUltrasonicSensor() (UltrasonicSensor, error) {
	instance, err := ev3dev.FindByDriver(Class, ultrasonicDriverNames)
	if err != nil {
		return UltrasonicSensor{}, err
	}
	return UltrasonicSensor{NewSensor(instance)}, nil
}

func (s UltrasonicSensor) SetModeDistCM() error { return s.SetMode(ModeUSDistCM) }
func (s UltrasonicSensor) SetModeDistIN() error { return s.SetMode(ModeUSDistIN) }
func (s UltrasonicSensor) SetModeListen() error { return s.SetMode(ModeUSListen) }

// DistanceCentimeters returns the measured distance in centimeters
// for the US-DIST-CM and US-SI-CM modes. The sensor reports tenths of
// a centimeter.
func (s UltrasonicSensor) DistanceCentimeters() (float64, error) {
	value, err := s.Value(0)
	if err != nil {
		return 0, err
	}
	return float64(value) / 10.0, nil
}

// DistanceInches returns the measured distance in inches for the
// US-DIST-IN and US-SI-IN modes. The sensor reports tenths of an
// inch.
func (s UltrasonicSensor) DistanceInches() (float64, error) {
	value, err := s.Value(0)
	if err != nil {
		return 0, err
	}
	return float64(value) / 10.0, nil
}

// IsPresent reports whether another ultrasonic sensor is transmitting
// nearby, for the US-LISTEN mode.
func (s UltrasonicSensor) IsPresent() (bool, error) {
	attr, err := s.Attribute("value0")
	if err != nil {
		return false, err
	}
	return attr.BoolValue()
}
