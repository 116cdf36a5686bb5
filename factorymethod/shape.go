package factorymethod

import (
	"fmt"
	"io"
)

// Shape kinds.
const (
	KindCircle    = "circle"
	KindRectangle = "rectangle"
)

// Shape is the product of a ShapeFactory.
type Shape interface {
	// Show prints the shape's line to w.
	Show(w io.Writer)
	Kind() string
}

// Circle is a Shape.
type Circle struct{}

func (Circle) Show(w io.Writer) { _, _ = fmt.Fprintln(w, "create a circle") }
func (Circle) Kind() string { return KindCircle }

// Rectangle is a Shape.
type Rectangle struct{}

func (Rectangle) Show(w io.Writer) { _, _ = fmt.Fprintln(w, "create a rectangle") }
func (Rectangle) Kind() string { return KindRectangle }
