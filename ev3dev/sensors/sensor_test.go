package sensors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ev3dev/ev3dev"
)

func writeAttr(t *testing.T, root, instance, name string, value []byte) {
	t.Helper()

	dir := filepath.Join(root, Class, instance)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), value, 0644))
}

func fakeSensor(t *testing.T, instance, address, driverName string) string {
	t.Helper()

	root := t.TempDir()
	t.Setenv(ev3dev.DriverPathEnv, root)
	writeAttr(t, root, instance, "address", []byte(address+"\n"))
	writeAttr(t, root, instance, "driver_name", []byte(driverName+"\n"))
	return root
}

func TestPortAddress(t *testing.T) {
	assert.Equal(t, "in1", In1.Address())
	assert.Equal(t, "in2", In2.Address())
	assert.Equal(t, "in3", In3.Address())
	assert.Equal(t, "in4", In4.Address())
}

func TestParsePort(t *testing.T) {
	tests := []struct {
		token       string
		expected    Port
		expectError bool
	}{
		{token: "in1", expected: In1},
		{token: "in2", expected: In2},
		{token: "in3", expected: In3},
		{token: "in4", expected: In4},
		{token: "in5", expectError: true},
		{token: "outA", expectError: true},
	}

	for _, tc := range tests {
		t.Run(tc.token, func(t *testing.T) {
			port, err := ParsePort(tc.token)
			if tc.expectError {
				var parseErr *ev3dev.ParseError
				assert.ErrorAs(t, err, &parseErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, port)
			}
		})
	}
}

func TestSensorAccessors(t *testing.T) {
	root := fakeSensor(t, "sensor0", "ev3-ports:in1", "lego-ev3-color")
	writeAttr(t, root, "sensor0", "mode", []byte("COL-REFLECT\n"))
	writeAttr(t, root, "sensor0", "modes", []byte("COL-REFLECT COL-AMBIENT COL-COLOR REF-RAW RGB-RAW COL-CAL\n"))
	writeAttr(t, root, "sensor0", "num_values", []byte("1\n"))
	writeAttr(t, root, "sensor0", "value0", []byte("37\n"))
	writeAttr(t, root, "sensor0", "units", []byte("pct\n"))
	writeAttr(t, root, "sensor0", "decimals", []byte("0\n"))

	sensor := NewSensor("sensor0")

	mode, err := sensor.Mode()
	require.NoError(t, err)
	assert.Equal(t, ModeColReflect, mode)

	modes, err := sensor.Modes()
	require.NoError(t, err)
	assert.Len(t, modes, 6)
	assert.Contains(t, modes, ModeRGBRaw)

	numValues, err := sensor.NumValues()
	require.NoError(t, err)
	assert.Equal(t, 1, numValues)

	value, err := sensor.Value(0)
	require.NoError(t, err)
	assert.Equal(t, 37, value)

	_, err = sensor.Value(8)
	require.Error(t, err)

	units, err := sensor.Units()
	require.NoError(t, err)
	assert.Equal(t, "pct", units)

	require.NoError(t, sensor.SetMode(ModeColAmbient))
	mode, err = sensor.Mode()
	require.NoError(t, err)
	assert.Equal(t, ModeColAmbient, mode)
}

func TestFindSensorByPort(t *testing.T) {
	fakeSensor(t, "sensor0", "ev3-ports:in3", "lego-ev3-touch")

	sensor, err := FindSensor(In3, touchDriverNames)
	require.NoError(t, err)
	assert.Equal(t, "sensor0", sensor.Instance())

	_, err = FindSensor(In1, touchDriverNames)
	var notConnected *ev3dev.NotConnectedError
	require.ErrorAs(t, err, &notConnected)
	assert.Equal(t, "in1", notConnected.Port)
}

func TestTouchSensorIsPressed(t *testing.T) {
	root := fakeSensor(t, "sensor0", "ev3-ports:in1", "lego-ev3-touch")
	writeAttr(t, root, "sensor0", "value0", []byte("1\n"))

	touch, err := NewTouchSensor(In1)
	require.NoError(t, err)

	pressed, err := touch.IsPressed()
	require.NoError(t, err)
	assert.True(t, pressed)
}
