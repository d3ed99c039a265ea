package ev3dev

import "os"

// DefaultSysClassPath is the root of the device class tree.
const DefaultSysClassPath = "/sys/class/"

// DriverPathEnv is the environment variable that overrides the device
// class tree root, mainly for tests and non-standard mounts.
const DriverPathEnv = "EV3DEV_DRIVER_PATH"

// SysClassPath returns the device class tree root currently in
// effect. The environment is consulted on every call.
func SysClassPath() string {
	if path := os.Getenv(DriverPathEnv); path != "" {
		return path
	}
	return DefaultSysClassPath
}
