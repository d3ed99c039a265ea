// Package ev3dev reads and writes device attributes exposed by the
// ev3dev kernel drivers as files under /sys/class. It covers
// discovery of connected devices and cached, typed access to their
// attribute files; the sensors and motors packages build their
// per-device accessors on top of it.
package ev3dev

import (
	"fmt"
	"sync"
)

const (
	addressAttr    = "address"
	driverNameAttr = "driver_name"
)

// Device is the capability every concrete device type composes:
// access to its attribute handles by name.
type Device interface {
	Attribute(name string) (*Attribute, error)
}

// Driver manages the attribute handles of one device instance. It
// resolves attributes lazily and memoizes them, so repeated access
// reuses an already opened handle instead of re-walking the
// filesystem.
//
// Copies of a Driver share the same cache; an attribute resolved
// through one copy is served to every other copy of the same logical
// device.
type Driver struct {
	class    string
	instance string

	mu    *sync.RWMutex
	attrs map[string]*Attribute
}

// NewDriver returns a Driver for the device instance under
// <root>/<class>/<instance>. The filesystem is not touched until the
// first attribute lookup.
func NewDriver(class, instance string) Driver {
	return Driver{
		class:    class,
		instance: instance,
		mu:       &sync.RWMutex{},
		attrs:    make(map[string]*Attribute),
	}
}

// Class returns the device class name.
func (d Driver) Class() string { return d.class }

// Instance returns the device instance name within its class.
func (d Driver) Instance() string { return d.instance }

// Attribute returns the handle for the named attribute, resolving and
// caching it on first use.
//
// The read lock covers only the cache lookup; resolution happens
// outside any lock so that slow filesystem access never blocks
// concurrent readers. Two callers missing the cache at the same time
// both resolve; the first insert wins, the loser's handle is closed
// and every caller gets the cached one.
func (d Driver) Attribute(name string) (*Attribute, error) {
	d.mu.RLock()
	attr, ok := d.attrs[name]
	d.mu.RUnlock()
	if ok {
		return attr, nil
	}

	attr, err := OpenAttribute(d.class, d.instance, name)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	if cached, ok := d.attrs[name]; ok {
		d.mu.Unlock()
		attr.Close()
		return cached, nil
	}
	d.attrs[name] = attr
	d.mu.Unlock()

	return attr, nil
}

// Address returns the address attribute, identifying the physical
// port the device is connected to.
func (d Driver) Address() (string, error) {
	attr, err := d.Attribute(addressAttr)
	if err != nil {
		return "", err
	}
	return attr.Value()
}

// DriverName returns the driver_name attribute, identifying the
// kernel driver bound to the device.
func (d Driver) DriverName() (string, error) {
	attr, err := d.Attribute(driverNameAttr)
	if err != nil {
		return "", err
	}
	return attr.Value()
}

func (d Driver) String() string {
	return fmt.Sprintf("driver %s/%s", d.class, d.instance)
}
