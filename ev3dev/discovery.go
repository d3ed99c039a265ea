package ev3dev

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Port identifies a physical connector on the brick. The sensors and
// motors packages provide the fixed enumerations implementing it.
type Port interface {
	Address() string
}

// readAttrValue reads one attribute without opening a persistent
// handle; discovery scans many instances it never keeps.
func readAttrValue(class, instance, name string) (string, error) {
	path := filepath.Join(SysClassPath(), class, instance, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read attribute %s/%s/%s: %w", class, instance, name, err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func listClass(class string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(filepath.Join(SysClassPath(), class))
	if err != nil {
		return nil, fmt.Errorf("list class %s: %w", class, err)
	}
	return entries, nil
}

// FindByPortAndDriver returns the instance name of the device in
// class whose address contains the port address and whose driver_name
// is one of driverNames. Instances are checked in directory listing
// order and the first match wins.
//
// The port comparison is substring containment rather than equality
// because some platforms report compound addresses (for example
// "ev3-ports:in1:i2c1"). This can match more permissively than
// expected when one port address is a prefix of another.
func FindByPortAndDriver(class string, port Port, driverNames []string) (string, error) {
	address := port.Address()

	entries, err := listClass(class)
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		instance := entry.Name()

		value, err := readAttrValue(class, instance, addressAttr)
		if err != nil {
			return "", err
		}
		if !strings.Contains(value, address) {
			continue
		}

		name, err := readAttrValue(class, instance, driverNameAttr)
		if err != nil {
			return "", err
		}
		if slices.Contains(driverNames, name) {
			return instance, nil
		}
	}

	return "", &NotConnectedError{Drivers: driverNames, Port: address}
}

// FindByDriver returns the single instance in class whose driver_name
// is one of driverNames, regardless of port. Zero matches fail with a
// *NotConnectedError; more than one fails with a
// *MultipleMatchesError carrying every candidate.
func FindByDriver(class string, driverNames []string) (string, error) {
	instances, err := FindAllByDriver(class, driverNames)
	if err != nil {
		return "", err
	}

	switch len(instances) {
	case 0:
		return "", &NotConnectedError{Drivers: driverNames}
	case 1:
		return instances[0], nil
	default:
		return "", &MultipleMatchesError{Drivers: driverNames, Instances: instances}
	}
}

// FindAllByDriver returns every instance in class whose driver_name
// is one of driverNames, in directory listing order.
func FindAllByDriver(class string, driverNames []string) ([]string, error) {
	entries, err := listClass(class)
	if err != nil {
		return nil, err
	}

	var found []string
	for _, entry := range entries {
		name, err := readAttrValue(class, entry.Name(), driverNameAttr)
		if err != nil {
			return nil, err
		}
		if slices.Contains(driverNames, name) {
			found = append(found, entry.Name())
		}
	}

	return found, nil
}
