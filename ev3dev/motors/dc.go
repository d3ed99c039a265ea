package motors

import "ev3dev/ev3dev"

// DcClass is the sysfs device class of unregulated DC motors.
const DcClass = "dc-motor"

var dcDriverNames = []string{"rcx-motor"}

// DcMotor is an unregulated motor such as the RCX motor or a Power
// Functions motor on an output port.
type DcMotor struct {
	Motor
}

// NewDcMotor returns the DC motor at the given port.
func NewDcMotor(port Port) (DcMotor, error) {
	instance, err := ev3dev.FindByPortAndDriver(DcClass, port, dcDriverNames)
	if err != nil {
		return DcMotor{}, err
	}
	return DcMotor{Motor{ev3dev.NewDriver(DcClass, instance)}}, nil
}

// FindDcMotor returns the DC motor regardless of port. It fails when
// none or more than one is connected.
func FindDcMotor() (DcMotor, error) {
	instance, err := ev3dev.FindByDriver(DcClass, dcDriverNames)
	if err != nil {
		return DcMotor{}, err
	}
	return DcMotor{Motor{ev3dev.NewDriver(DcClass, instance)}}, nil
}
