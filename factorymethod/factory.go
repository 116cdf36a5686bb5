package factorymethod

import (
	"strconv"
	"strings"
)

// ShapeFactory creates a Shape. Every call returns a new value.
type ShapeFactory interface {
	Create() Shape
}

// CircleFactory creates circles.
type CircleFactory struct{}

func (CircleFactory) Create() Shape { return Circle{} }

// RectangleFactory creates rectangles.
type RectangleFactory struct{}

func (RectangleFactory) Create() Shape { return Rectangle{} }

// FactoryFunc adapts a plain constructor to ShapeFactory.
//
// Example:
//
//	var f factorymethod.ShapeFactory = factorymethod.FactoryFunc(func() factorymethod.Shape {
//		return factorymethod.Circle{}
//	})
type FactoryFunc func() Shape

// Create calls f.
func (f FactoryFunc) Create() Shape { return f() }

// UnknownKindError is returned by ForKind for an unsupported shape kind.
type UnknownKindError struct{ Kind string }

// Error implements the error interface.
func (e UnknownKindError) Error() string {
	// Example: factorymethod: unknown shape kind "triangle"
	return "factorymethod: unknown shape kind " + strconv.Quote(e.Kind)
}

// Kinds lists the supported shape kinds in demo order.
func Kinds() []string { return []string{KindCircle, KindRectangle} }

// ForKind returns the factory for kind (case-insensitive).
func ForKind(kind string) (ShapeFactory, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindCircle:
		return CircleFactory{}, nil
	case KindRectangle:
		return RectangleFactory{}, nil
	default:
		return nil, UnknownKindError{Kind: kind}
	}
}
