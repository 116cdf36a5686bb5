package abstractfactory

import (
	"fmt"
	"io"
)

// Family tags the product family a product or factory belongs to.
type Family string

const (
	Windows Family = "windows"
	Linux   Family = "linux"
)

// OperatingSystem is the abstract OS product.
type OperatingSystem interface {
	// Run prints the identifying line of the OS to w.
	Run(w io.Writer)
	Family() Family
}

// Application is the abstract application product.
type Application interface {
	// Open prints the identifying line of the application to w.
	Open(w io.Writer)
	Family() Family
}

// WindowsSystem is the Windows OperatingSystem.
type WindowsSystem struct{}

func (WindowsSystem) Run(w io.Writer) { _, _ = fmt.Fprintln(w, "running windows") }
func (WindowsSystem) Family() Family { return Windows }

// LinuxSystem is the Linux OperatingSystem.
type LinuxSystem struct{}

func (LinuxSystem) Run(w io.Writer) { _, _ = fmt.Fprintln(w, "running linux") }
func (LinuxSystem) Family() Family { return Linux }

// Excel is the Windows-family Application.
type Excel struct{}

func (Excel) Open(w io.Writer) { _, _ = fmt.Fprintln(w, "open excel") }
func (Excel) Family() Family { return Windows }

// Word is the Linux-family Application.
type Word struct{}

func (Word) Open(w io.Writer) { _, _ = fmt.Fprintln(w, "open word") }
func (Word) Family() Family { return Linux }
