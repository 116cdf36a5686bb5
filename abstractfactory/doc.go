// Package abstractfactory illustrates the Abstract Factory pattern.
//
// Two product families are modelled: operating systems and applications.
// A SoftwareFactory produces one of each, and every concrete factory
// guarantees both products belong to the same family:
//
//   - WindowsFactory: WindowsSystem + Excel
//   - LinuxFactory:   LinuxSystem + Word
//
// Callers depend only on the SoftwareFactory, OperatingSystem and Application
// interfaces, so swapping the factory swaps the whole family at once.
//
// Example:
//
//	f := abstractfactory.WindowsFactory{}
//	f.CreateOS().Run(os.Stdout)   // running windows
//	f.CreateApp().Open(os.Stdout) // open excel
package abstractfactory
