package abstractfactory

import (
	"strconv"
	"strings"
)

// SoftwareFactory creates a matched OS/application pair.
//
// Implementations must return products whose Family equals the factory's own.
type SoftwareFactory interface {
	CreateOS() OperatingSystem
	CreateApp() Application
	Family() Family
}

// WindowsFactory produces the Windows family.
type WindowsFactory struct{}

// CreateOS returns a new WindowsSystem.
func (WindowsFactory) CreateOS() OperatingSystem { return WindowsSystem{} }

// CreateApp returns a new Excel.
func (WindowsFactory) CreateApp() Application { return Excel{} }

func (WindowsFactory) Family() Family { return Windows }

// LinuxFactory produces the Linux family.
type LinuxFactory struct{}

// CreateOS returns a new LinuxSystem.
func (LinuxFactory) CreateOS() OperatingSystem { return LinuxSystem{} }

// CreateApp returns a new Word.
func (LinuxFactory) CreateApp() Application { return Word{} }

func (LinuxFactory) Family() Family { return Linux }

// UnknownFamilyError is returned by ForFamily for an unsupported family name.
type UnknownFamilyError struct{ Name string }

// Error implements the error interface.
func (e UnknownFamilyError) Error() string {
	// Example: abstractfactory: unknown family "macos"
	return "abstractfactory: unknown family " + strconv.Quote(e.Name)
}

// Families lists the supported families in demo order.
func Families() []Family { return []Family{Windows, Linux} }

// ForFamily returns the factory for name (case-insensitive, surrounding spaces ignored).
func ForFamily(name string) (SoftwareFactory, error) {
	switch Family(strings.ToLower(strings.TrimSpace(name))) {
	case Windows:
		return WindowsFactory{}, nil
	case Linux:
		return LinuxFactory{}, nil
	default:
		return nil, UnknownFamilyError{Name: name}
	}
}
