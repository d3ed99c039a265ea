package ev3dev

import "fmt"

// NotConnectedError reports that discovery found no device matching
// the requested driver names, and the port when the search was
// restricted to one.
type NotConnectedError struct {
	Drivers []string
	Port    string // empty when no port was requested
}

func (e *NotConnectedError) Error() string {
	if e.Port != "" {
		return fmt.Sprintf("no device with driver %v connected at port %s", e.Drivers, e.Port)
	}
	return fmt.Sprintf("no device with driver %v connected", e.Drivers)
}

// MultipleMatchesError reports that a single-device search matched
// more than one instance. Instances carries every candidate so the
// caller can disambiguate manually.
type MultipleMatchesError struct {
	Drivers   []string
	Instances []string
}

func (e *MultipleMatchesError) Error() string {
	return fmt.Sprintf("multiple devices with driver %v connected: %v", e.Drivers, e.Instances)
}

// ParseError reports content that does not match the grammar of the
// requested type.
type ParseError struct {
	Value string
	Want  string
	Err   error // underlying parse error, may be nil
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse %q as %s: %v", e.Value, e.Want, e.Err)
	}
	return fmt.Sprintf("cannot parse %q as %s", e.Value, e.Want)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnsupportedFormatError reports a bin_data block whose reported
// format does not match the decode the caller asked for.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported bin_data format %q", e.Format)
}
