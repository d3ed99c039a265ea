// Package motors provides access to devices of the tacho-motor and
// dc-motor classes: the generic accessors shared by every motor plus
// the concrete EV3 motor types.
package motors

import (
	"fmt"
	"slices"

	"ev3dev/ev3dev"
)

// Motor command tokens accepted by the command attribute.
const (
	CommandRunForever = "run-forever"
	CommandRunTimed   = "run-timed"
	CommandRunDirect  = "run-direct"
	CommandStop       = "stop"
)

// Polarity tokens.
const (
	PolarityNormal   = "normal"
	PolarityReversed = "reversed"
)

// State tokens reported by the state attribute.
const (
	StateRunning    = "running"
	StateRamping    = "ramping"
	StateHolding    = "holding"
	StateOverloaded = "overloaded"
	StateStalled    = "stalled"
)

// Stop action tokens.
const (
	StopActionCoast = "coast"
	StopActionBrake = "brake"
	StopActionHold  = "hold"
)

// Port is one of the four lettered output ports.
type Port int

const (
	OutA Port = iota + 1
	OutB
	OutC
	OutD
)

// Address returns the sysfs address token of the port.
func (p Port) Address() string {
	switch p {
	case OutA:
		return "outA"
	case OutB:
		return "outB"
	case OutC:
		return "outC"
	case OutD:
		return "outD"
	}
	return fmt.Sprintf("out?%d", int(p))
}

// ParsePort maps an address token such as "outA" to its port. Unknown
// tokens fail with a *ev3dev.ParseError.
func ParsePort(s string) (Port, error) {
	switch s {
	case "outA":
		return OutA, nil
	case "outB":
		return OutB, nil
	case "outC":
		return OutC, nil
	case "outD":
		return OutD, nil
	}
	return 0, &ev3dev.ParseError{Value: s, Want: "output port"}
}

// Motor provides the accessors shared by the tacho and DC motor
// classes.
type Motor struct {
	ev3dev.Driver
}

func (m Motor) intAttr(name string) (int, error) {
	attr, err := m.Attribute(name)
	if err != nil {
		return 0, err
	}
	return attr.IntValue()
}

func (m Motor) setIntAttr(name string, value int) error {
	attr, err := m.Attribute(name)
	if err != nil {
		return err
	}
	return attr.SetIntValue(value)
}

func (m Motor) stringAttr(name string) (string, error) {
	attr, err := m.Attribute(name)
	if err != nil {
		return "", err
	}
	return attr.Value()
}

func (m Motor) setStringAttr(name, value string) error {
	attr, err := m.Attribute(name)
	if err != nil {
		return err
	}
	return attr.SetValue(value)
}

// SetCommand sends a command token such as CommandRunForever to the
// motor controller.
func (m Motor) SetCommand(command string) error {
	return m.setStringAttr("command", command)
}

// Commands returns the command tokens the motor supports.
func (m Motor) Commands() ([]string, error) {
	attr, err := m.Attribute("commands")
	if err != nil {
		return nil, err
	}
	return attr.Values()
}

// DutyCycle returns the current duty cycle in percent, -100 to 100.
func (m Motor) DutyCycle() (int, error) {
	return m.intAttr("duty_cycle")
}

// DutyCycleSetpoint returns the requested duty cycle.
func (m Motor) DutyCycleSetpoint() (int, error) {
	return m.intAttr("duty_cycle_sp")
}

// SetDutyCycleSetpoint requests a duty cycle, -100 to 100.
func (m Motor) SetDutyCycleSetpoint(value int) error {
	return m.setIntAttr("duty_cycle_sp", value)
}

// Polarity returns the rotation polarity token.
func (m Motor) Polarity() (string, error) {
	return m.stringAttr("polarity")
}

// SetPolarity sets the rotation polarity, PolarityNormal or
// PolarityReversed.
func (m Motor) SetPolarity(polarity string) error {
	return m.setStringAttr("polarity", polarity)
}

// RampUpSetpoint returns the ramp-up time in milliseconds.
func (m Motor) RampUpSetpoint() (int, error) {
	return m.intAttr("ramp_up_sp")
}

// SetRampUpSetpoint sets the ramp-up time in milliseconds.
func (m Motor) SetRampUpSetpoint(ms int) error {
	return m.setIntAttr("ramp_up_sp", ms)
}

// RampDownSetpoint returns the ramp-down time in milliseconds.
func (m Motor) RampDownSetpoint() (int, error) {
	return m.intAttr("ramp_down_sp")
}

// SetRampDownSetpoint sets the ramp-down time in milliseconds.
func (m Motor) SetRampDownSetpoint(ms int) error {
	return m.setIntAttr("ramp_down_sp", ms)
}

// State returns the state tokens currently active, e.g. running or
// ramping.
func (m Motor) State() ([]string, error) {
	attr, err := m.Attribute("state")
	if err != nil {
		return nil, err
	}
	return attr.Values()
}

// StopAction returns the behavior applied on stop.
func (m Motor) StopAction() (string, error) {
	return m.stringAttr("stop_action")
}

// SetStopAction sets the behavior applied on stop, e.g.
// StopActionCoast or StopActionBrake.
func (m Motor) SetStopAction(action string) error {
	return m.setStringAttr("stop_action", action)
}

// TimeSetpoint returns the run duration for CommandRunTimed in
// milliseconds.
func (m Motor) TimeSetpoint() (int, error) {
	return m.intAttr("time_sp")
}

// SetTimeSetpoint sets the run duration for CommandRunTimed in
// milliseconds.
func (m Motor) SetTimeSetpoint(ms int) error {
	return m.setIntAttr("time_sp", ms)
}

// IsRunning reports whether the motor is currently powered.
func (m Motor) IsRunning() (bool, error) {
	states, err := m.State()
	if err != nil {
		return false, err
	}
	return slices.Contains(states, StateRunning), nil
}

// IsRamping reports whether the motor has not yet reached its
// setpoint.
func (m Motor) IsRamping() (bool, error) {
	states, err := m.State()
	if err != nil {
		return false, err
	}
	return slices.Contains(states, StateRamping), nil
}

// RunForever starts the motor until a stop command.
func (m Motor) RunForever() error {
	return m.SetCommand(CommandRunForever)
}

// RunTimed runs the motor for the given number of milliseconds.
func (m Motor) RunTimed(ms int) error {
	if err := m.SetTimeSetpoint(ms); err != nil {
		return err
	}
	return m.SetCommand(CommandRunTimed)
}

// Stop halts the motor with the configured stop action.
func (m Motor) Stop() error {
	return m.SetCommand(CommandStop)
}
