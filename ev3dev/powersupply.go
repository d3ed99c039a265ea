package ev3dev

// PowerSupplyClass is the sysfs class of battery and supply devices.
const PowerSupplyClass = "power_supply"

// EV3Battery is the instance name of the EV3 brick battery.
const EV3Battery = "lego-ev3-battery"

// PowerSupply reads the state of a battery or external supply.
type PowerSupply struct {
	Driver
}

// NewPowerSupply returns the power supply with the given instance
// name, typically EV3Battery.
func NewPowerSupply(instance string) PowerSupply {
	return PowerSupply{NewDriver(PowerSupplyClass, instance)}
}

// VoltageNow returns the battery voltage in microvolts.
func (p PowerSupply) VoltageNow() (int, error) {
	attr, err := p.Attribute("voltage_now")
	if err != nil {
		return 0, err
	}
	return attr.IntValue()
}

// CurrentNow returns the battery current in microamps.
func (p PowerSupply) CurrentNow() (int, error) {
	attr, err := p.Attribute("current_now")
	if err != nil {
		return 0, err
	}
	return attr.IntValue()
}

// VoltageMaxDesign returns the design maximum voltage in microvolts.
func (p PowerSupply) VoltageMaxDesign() (int, error) {
	attr, err := p.Attribute("voltage_max_design")
	if err != nil {
		return 0, err
	}
	return attr.IntValue()
}

// VoltageMinDesign returns the design minimum voltage in microvolts.
func (p PowerSupply) VoltageMinDesign() (int, error) {
	attr, err := p.Attribute("voltage_min_design")
	if err != nil {
		return 0, err
	}
	return attr.IntValue()
}

// Technology returns the battery technology string, e.g. "Li-ion".
func (p PowerSupply) Technology() (string, error) {
	attr, err := p.Attribute("technology")
	if err != nil {
		return "", err
	}
	return attr.Value()
}
