package ev3dev

// LedClass is the sysfs class of the brick status LEDs.
const LedClass = "leds"

// Instance names of the four EV3 brick status LEDs. Each physical LED
// pair mixes a red and a green channel.
const (
	LedLeftRed    = "led0:red:brick-status"
	LedLeftGreen  = "led0:green:brick-status"
	LedRightRed   = "led1:red:brick-status"
	LedRightGreen = "led1:green:brick-status"
)

// Led controls one channel of a brick status LED.
type Led struct {
	Driver
}

// NewLed returns the LED with the given instance name. LEDs are not
// discovered; their instance names are fixed per platform.
func NewLed(instance string) Led {
	return Led{NewDriver(LedClass, instance)}
}

// Brightness returns the current brightness, 0 to MaxBrightness.
func (l Led) Brightness() (int, error) {
	attr, err := l.Attribute("brightness")
	if err != nil {
		return 0, err
	}
	return attr.IntValue()
}

// SetBrightness sets the brightness. 0 turns the channel off.
func (l Led) SetBrightness(value int) error {
	attr, err := l.Attribute("brightness")
	if err != nil {
		return err
	}
	return attr.SetIntValue(value)
}

// MaxBrightness returns the highest brightness the channel accepts.
func (l Led) MaxBrightness() (int, error) {
	attr, err := l.Attribute("max_brightness")
	if err != nil {
		return 0, err
	}
	return attr.IntValue()
}

// Trigger returns the currently active kernel trigger.
func (l Led) Trigger() (string, error) {
	attr, err := l.Attribute("trigger")
	if err != nil {
		return "", err
	}
	return attr.Value()
}

// SetTrigger selects a kernel trigger, e.g. "none" or "timer".
func (l Led) SetTrigger(trigger string) error {
	attr, err := l.Attribute("trigger")
	if err != nil {
		return err
	}
	return attr.SetValue(trigger)
}
