package ev3dev

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedBrightness(t *testing.T) {
	root := fakeTree(t)
	writeAttr(t, root, LedClass, LedLeftGreen, "brightness", []byte("0\n"))
	writeAttr(t, root, LedClass, LedLeftGreen, "max_brightness", []byte("255\n"))

	led := NewLed(LedLeftGreen)

	max, err := led.MaxBrightness()
	require.NoError(t, err)
	assert.Equal(t, 255, max)

	require.NoError(t, led.SetBrightness(255))

	brightness, err := led.Brightness()
	require.NoError(t, err)
	assert.Equal(t, 255, brightness)
}

func TestPowerSupply(t *testing.T) {
	root := fakeTree(t)
	writeAttr(t, root, PowerSupplyClass, EV3Battery, "voltage_now", []byte("7932000\n"))
	writeAttr(t, root, PowerSupplyClass, EV3Battery, "current_now", []byte("174000\n"))
	writeAttr(t, root, PowerSupplyClass, EV3Battery, "technology", []byte("Li-ion\n"))

	battery := NewPowerSupply(EV3Battery)

	voltage, err := battery.VoltageNow()
	require.NoError(t, err)
	assert.Equal(t, 7932000, voltage)

	current, err := battery.CurrentNow()
	require.NoError(t, err)
	assert.Equal(t, 174000, current)

	tech, err := battery.Technology()
	require.NoError(t, err)
	assert.Equal(t, "Li-ion", tech)
}
