package sensors

import "ev3dev/ev3dev"

// Modes of the EV3 gyro sensor.
const (
	// ModeGyroAng reports the rotation angle in degrees.
	ModeGyroAng = "GYRO-ANG"
	// ModeGyroRate reports the rotation speed in degrees per second.
	ModeGyroRate = "GYRO-RATE"
	// ModeGyroFas reports the raw rotation speed at a higher rate.
	ModeGyroFas = "GYRO-FAS"
	// ModeGyroGAndA reports angle and rotation speed together.
	ModeGyroGAndA = "GYRO-G&A"
	// ModeGyroCal recalibrates the zero point.
	ModeGyroCal = "GYRO-CAL"
)

var gyroDriverNames = []string{"lego-ev3-gyro"}

// GyroSensor is the LEGO EV3 gyro sensor.
type GyroSensor struct {
	Sensor
}

// NewGyroSensor returns the gyro sensor at the given port.
func NewGyroSensor(port Port) (GyroSensor, error) {
	sensor, err := FindSensor(port, gyroDriverNames)
	if err != nil {
		return GyroSensor{}, err
	}
	return GyroSensor{sensor}, nil
}

// FindGyroSensor returns the gyro sensor regardless of port. It fails
// when none or more than one is connected.
func FindGyroSensor() (GyroSensor, error) {
	instance, err := ev3dev.FindByDriver(Class, gyroDriverNames)
	if err != nil {
		return GyroSensor{}, err
	}
	return GyroSensor{NewSensor(instance)}, nil
}

func (s GyroSensor) SetModeAngle() error        { return s.SetMode(ModeGyroAng) }
func (s GyroSensor) SetModeRate() error         { return s.SetMode(ModeGyroRate) }
func (s GyroSensor) SetModeAngleAndRate() error { return s.SetMode(ModeGyroGAndA) }

// Angle returns the rotation angle in degrees for the GYRO-ANG and
// GYRO-G&A modes. The value accumulates; re-entering GYRO-ANG resets
// it to zero.
func (s GyroSensor) Angle() (int, error) {
	return s.Value(0)
}

// Rate returns the rotation speed in degrees per second for the
// GYRO-RATE mode.
func (s GyroSensor) Rate() (int, error) {
	return s.Value(0)
}

// AngleAndRate returns both readings for the GYRO-G&A mode.
func (s GyroSensor) AngleAndRate() (angle, rate int, err error) {
	if angle, err = s.Value(0); err != nil {
		return 0, 0, err
	}
	if rate, err = s.Value(1); err != nil {
		return 0, 0, err
	}
	return angle, rate, nil
}
