package ev3dev

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Attribute is one resolved attribute file of a device instance. The
// file handle is opened once and reused for every read and write, so
// repeated access does not re-walk the filesystem.
//
// Attributes are shared by pointer and safe for concurrent use; a
// mutex serializes the seek/read and seek/write pairs on the shared
// file offset.
type Attribute struct {
	path string

	mu   sync.Mutex
	file *os.File
}

// OpenAttribute resolves the attribute file at
// <root>/<class>/<instance>/<name> and opens it for the widest access
// the file permits.
func OpenAttribute(class, instance, name string) (*Attribute, error) {
	path := filepath.Join(SysClassPath(), class, instance, name)

	file, err := openAttrFile(path)
	if err != nil {
		return nil, fmt.Errorf("open attribute %s/%s/%s: %w", class, instance, name, err)
	}

	return &Attribute{path: path, file: file}, nil
}

// Most attributes are read-write, but some are read-only (address,
// driver_name) and a few are write-only (command on some drivers).
func openAttrFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err == nil || !os.IsPermission(err) {
		return file, err
	}
	if file, rdErr := os.OpenFile(path, os.O_RDONLY, 0); rdErr == nil {
		return file, nil
	}
	return os.OpenFile(path, os.O_WRONLY, 0)
}

// Path returns the resolved filesystem path of the attribute.
func (a *Attribute) Path() string { return a.path }

// Close releases the underlying file handle. Attributes served from a
// driver cache stay open for the cache lifetime; Close is for handles
// that never made it into a cache.
func (a *Attribute) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.file.Close()
}

func (a *Attribute) readAll() ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := a.file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("read %s: %w", a.path, err)
	}
	data, err := io.ReadAll(a.file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", a.path, err)
	}
	return data, nil
}

// Value returns the current attribute content with the trailing
// newline removed.
func (a *Attribute) Value() (string, error) {
	data, err := a.readAll()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// IntValue parses the attribute content as a signed decimal integer.
func (a *Attribute) IntValue() (int, error) {
	value, err := a.Value()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ParseError{Value: value, Want: "int", Err: err}
	}
	return n, nil
}

// BoolValue parses the attribute content as "0" or "1".
func (a *Attribute) BoolValue() (bool, error) {
	value, err := a.Value()
	if err != nil {
		return false, err
	}
	switch value {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, &ParseError{Value: value, Want: "bool"}
}

// Values splits the attribute content on whitespace, for attributes
// that hold space-delimited sets such as modes or state.
func (a *Attribute) Values() ([]string, error) {
	value, err := a.Value()
	if err != nil {
		return nil, err
	}
	return strings.Fields(value), nil
}

// RawData returns the undecoded attribute content. Used for
// bin_data-style attributes whose layout is described by the
// companion bin_data_format and num_values attributes.
func (a *Attribute) RawData() ([]byte, error) {
	return a.readAll()
}

// SetValue replaces the attribute content with value. The device may
// reject the write (read-only attribute, value invalid for the
// current mode); the error is returned as-is and never retried.
func (a *Attribute) SetValue(value string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := a.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("write %s: %w", a.path, err)
	}
	if _, err := a.file.WriteString(value); err != nil {
		return fmt.Errorf("write %s: %w", a.path, err)
	}
	// Drop leftover bytes when the new value is shorter than the old
	// one. Sysfs files reject truncation; there a write already
	// replaces the content wholesale, so the error is ignored.
	a.file.Truncate(int64(len(value)))
	return nil
}

// SetIntValue formats value as decimal and writes it.
func (a *Attribute) SetIntValue(value int) error {
	return a.SetValue(strconv.Itoa(value))
}

// SetBoolValue writes "1" for true and "0" for false, the tokens
// BoolValue reads back.
func (a *Attribute) SetBoolValue(value bool) error {
	if value {
		return a.SetValue("1")
	}
	return a.SetValue("0")
}
