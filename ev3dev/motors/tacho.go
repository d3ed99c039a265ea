package motors

import "ev3dev/ev3dev"

// Class is the sysfs device class of regulated tacho motors.
const Class = "tacho-motor"

// Additional commands supported by tacho motors.
const (
	CommandRunToAbsPos = "run-to-abs-pos"
	CommandRunToRelPos = "run-to-rel-pos"
	CommandReset       = "reset"
)

var (
	largeDriverNames  = []string{"lego-ev3-l-motor"}
	mediumDriverNames = []string{"lego-ev3-m-motor"}
)

// TachoMotor is a motor with position feedback, i.e. the EV3 large
// and medium motors.
type TachoMotor struct {
	Motor
}

func newTachoMotor(instance string) TachoMotor {
	return TachoMotor{Motor{ev3dev.NewDriver(Class, instance)}}
}

// NewLargeMotor returns the EV3 large motor at the given port.
func NewLargeMotor(port Port) (TachoMotor, error) {
	instance, err := ev3dev.FindByPortAndDriver(Class, port, largeDriverNames)
	if err != nil {
		return TachoMotor{}, err
	}
	return newTachoMotor(instance), nil
}

// NewMediumMotor returns the EV3 medium motor at the given port.
func NewMediumMotor(port Port) (TachoMotor, error) {
	instance, err := ev3dev.FindByPortAndDriver(Class, port, mediumDriverNames)
	if err != nil {
		return TachoMotor{}, err
	}
	return newTachoMotor(instance), nil
}

// FindLargeMotor returns the EV3 large motor regardless of port. It
// fails when none or more than one is connected.
func FindLargeMotor() (TachoMotor, error) {
	instance, err := ev3dev.FindByDriver(Class, largeDriverNames)
	if err != nil {
		return TachoMotor{}, err
	}
	return newTachoMotor(instance), nil
}

// FindMediumMotor returns the EV3 medium motor regardless of port. It
// fails when none or more than one is connected.
func FindMediumMotor() (TachoMotor, error) {
	instance, err := ev3dev.FindByDriver(Class, mediumDriverNames)
	if err != nil {
		return TachoMotor{}, err
	}
	return newTachoMotor(instance), nil
}

// CountPerRot returns the number of tacho counts per full rotation.
func (m TachoMotor) CountPerRot() (int, error) {
	return m.intAttr("count_per_rot")
}

// Position returns the current position in tacho counts.
func (m TachoMotor) Position() (int, error) {
	return m.intAttr("position")
}

// SetPosition overwrites the position counter, usually to zero it.
func (m TachoMotor) SetPosition(value int) error {
	return m.setIntAttr("position", value)
}

// PositionSetpoint returns the target position for the run-to-*-pos
// commands.
func (m TachoMotor) PositionSetpoint() (int, error) {
	return m.intAttr("position_sp")
}

// SetPositionSetpoint sets the target position for the run-to-*-pos
// commands.
func (m TachoMotor) SetPositionSetpoint(value int) error {
	return m.setIntAttr("position_sp", value)
}

// Speed returns the current speed in tacho counts per second.
func (m TachoMotor) Speed() (int, error) {
	return m.intAttr("speed")
}

// SpeedSetpoint returns the target speed in tacho counts per second.
func (m TachoMotor) SpeedSetpoint() (int, error) {
	return m.intAttr("speed_sp")
}

// SetSpeedSetpoint sets the target speed in tacho counts per second.
func (m TachoMotor) SetSpeedSetpoint(value int) error {
	return m.setIntAttr("speed_sp", value)
}

// MaxSpeed returns the highest speed the motor can sustain.
func (m TachoMotor) MaxSpeed() (int, error) {
	return m.intAttr("max_speed")
}

// RunToAbsolutePosition moves to the given position in tacho counts.
func (m TachoMotor) RunToAbsolutePosition(position int) error {
	if err := m.SetPositionSetpoint(position); err != nil {
		return err
	}
	return m.SetCommand(CommandRunToAbsPos)
}

// RunToRelativePosition moves by the given number of tacho counts.
func (m TachoMotor) RunToRelativePosition(offset int) error {
	if err := m.SetPositionSetpoint(offset); err != nil {
		return err
	}
	return m.SetCommand(CommandRunToRelPos)
}

// Reset restores all setpoints to their defaults and stops the motor.
func (m TachoMotor) Reset() error {
	return m.SetCommand(CommandReset)
}
