// Package demo holds the console scenarios for each creational pattern.
//
// Every scenario writes exactly the lines a reader of the pattern would
// expect on stdout; logging goes through the Runner's logger only.
package demo

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/sghaida/creational/abstractfactory"
	"github.com/sghaida/creational/builder"
	"github.com/sghaida/creational/factorymethod"
	"github.com/sghaida/creational/prototype"
)

// Demo names accepted by Run.
const (
	NameAbstractFactory = "abstract-factory"
	NameBuilder         = "builder"
	NameFactoryMethod   = "factory-method"
	NamePrototype       = "prototype"
	NamePrototypeDeep   = "prototype-deep"
	NamePrototypeFile   = "prototype-file"
)

// Separator is printed between the two abstract-factory families.
const Separator = "---------------"

// UnknownDemoError is returned by Run for a name not in Names().
type UnknownDemoError struct{ Name string }

func (e UnknownDemoError) Error() string {
	return "demo: unknown demo " + strconv.Quote(e.Name)
}

// Runner runs the demos against Out.
type Runner struct {
	Out io.Writer
	Log zerolog.Logger

	// ScratchPath is the file used by the file round-trip clone.
	ScratchPath string
}

// Names lists every demo in the order All runs them.
func Names() []string {
	return []string{
		NameAbstractFactory,
		NameBuilder,
		NameFactoryMethod,
		NamePrototype,
		NamePrototypeDeep,
		NamePrototypeFile,
	}
}

// Run runs the named demo.
func (r Runner) Run(name string) error {
	r.Log.Debug().Str("demo", name).Msg("demo.start")

	var err error
	switch name {
	case NameAbstractFactory:
		r.AbstractFactory()
	case NameBuilder:
		r.Builder()
	case NameFactoryMethod:
		r.FactoryMethod()
	case NamePrototype:
		r.Prototype()
	case NamePrototypeDeep:
		r.DeepPrototype()
	case NamePrototypeFile:
		err = r.RoundTripPrototype()
	default:
		return UnknownDemoError{Name: name}
	}
	if err != nil {
		r.Log.Error().Err(err).Str("demo", name).Msg("demo.failed")
		return err
	}

	r.Log.Debug().Str("demo", name).Msg("demo.done")
	return nil
}

// All runs every demo in Names() order and stops at the first error.
func (r Runner) All() error {
	for _, name := range Names() {
		if err := r.Run(name); err != nil {
			return err
		}
	}
	return nil
}

// AbstractFactory runs the Windows family, a separator, then the Linux family.
func (r Runner) AbstractFactory() {
	r.runFamily(abstractfactory.WindowsFactory{})
	r.println(Separator)
	r.runFamily(abstractfactory.LinuxFactory{})
}

func (r Runner) runFamily(f abstractfactory.SoftwareFactory) {
	system := f.CreateOS()
	app := f.CreateApp()
	r.Log.Debug().Str("family", string(f.Family())).Msg("abstractfactory.family")

	system.Run(r.Out)
	app.Open(r.Out)
}

// Builder directs both phone builders and prints the results.
func (r Runner) Builder() {
	pro := builder.NewDirector(builder.NewPhone15ProBuilder()).CreatePhone()
	r.println(pro)

	proMax := builder.NewDirector(builder.NewPhone15ProMaxBuilder()).CreatePhone()
	r.println(proMax)
}

// FactoryMethod creates and shows a circle, then a rectangle.
func (r Runner) FactoryMethod() {
	var circleFactory factorymethod.ShapeFactory = factorymethod.CircleFactory{}
	circleFactory.Create().Show(r.Out)

	var rectangleFactory factorymethod.ShapeFactory = factorymethod.RectangleFactory{}
	rectangleFactory.Create().Show(r.Out)
}

// Prototype clones a sheep, renames the clone and shows the original is untouched.
func (r Runner) Prototype() {
	lazySheep := prototype.NewSheep("lazySheep")

	duoLi := lazySheep.Clone()
	duoLi.SetName("duoLi")

	r.println(lazySheep.Name())
	r.println(duoLi.Name())
	r.println(lazySheep == duoLi)
}

// DeepPrototype clones a trophy structurally and renames the clone's human.
func (r Runner) DeepPrototype() {
	trophy := prototype.NewTrophy(prototype.NewHuman("ZhangSan"))

	trophy2 := trophy.Clone()
	trophy2.SetName("LiSi")

	r.println(trophy.Name())
	r.println(trophy2.Name())
}

// RoundTripPrototype is DeepPrototype using the file round-trip at ScratchPath.
// The scratch file is removed afterwards.
func (r Runner) RoundTripPrototype() error {
	trophy := prototype.NewTrophy(prototype.NewHuman("ZhangSan"))

	r.Log.Debug().Str("path", r.ScratchPath).Msg("prototype.roundtrip")
	trophy2, err := prototype.RoundTrip(r.ScratchPath, trophy)
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(r.ScratchPath); rmErr != nil {
			r.Log.Warn().Err(rmErr).Str("path", r.ScratchPath).Msg("prototype.roundtrip.cleanup")
		}
	}()

	trophy2.SetName("LiSi")

	r.println(trophy.Name())
	r.println(trophy2.Name())
	return nil
}

func (r Runner) println(v any) { _, _ = fmt.Fprintln(r.Out, v) }
