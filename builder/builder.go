package builder

import (
	"strconv"
	"strings"
)

// PhoneBuilder is the abstract builder: one method per construction step plus
// an accessor for the accumulated product.
type PhoneBuilder interface {
	BuildSize()
	BuildFPS()
	BuildFocal()
	BuildBattery()

	// Phone returns a copy of the product built so far.
	Phone() Phone
}

// phoneBase holds the product under construction for concrete builders.
type phoneBase struct {
	phone Phone
}

func (b *phoneBase) Phone() Phone { return b.phone }

// Phone15ProBuilder builds the 15 Pro configuration.
type Phone15ProBuilder struct{ phoneBase }

// NewPhone15ProBuilder returns a builder with an empty product.
func NewPhone15ProBuilder() *Phone15ProBuilder { return &Phone15ProBuilder{} }

func (b *Phone15ProBuilder) BuildSize() { b.phone.Size = 5.8 }
func (b *Phone15ProBuilder) BuildFPS() { b.phone.FPS = 120 }
func (b *Phone15ProBuilder) BuildFocal() { b.phone.Focal = 3 }
func (b *Phone15ProBuilder) BuildBattery() { b.phone.Battery = 3200 }

// Phone15ProMaxBuilder builds the 15 Pro Max configuration.
type Phone15ProMaxBuilder struct{ phoneBase }

// NewPhone15ProMaxBuilder returns a builder with an empty product.
func NewPhone15ProMaxBuilder() *Phone15ProMaxBuilder { return &Phone15ProMaxBuilder{} }

func (b *Phone15ProMaxBuilder) BuildSize() { b.phone.Size = 6.7 }
func (b *Phone15ProMaxBuilder) BuildFPS() { b.phone.FPS = 120 }
func (b *Phone15ProMaxBuilder) BuildFocal() { b.phone.Focal = 5 }
func (b *Phone15ProMaxBuilder) BuildBattery() { b.phone.Battery = 4500 }

// Model names accepted by ForModel.
const (
	Model15Pro    = "15pro"
	Model15ProMax = "15promax"
)

// UnknownModelError is returned by ForModel for an unsupported model name.
type UnknownModelError struct{ Name string }

// Error implements the error interface.
func (e UnknownModelError) Error() string {
	// Example: builder: unknown model "16"
	return "builder: unknown model " + strconv.Quote(e.Name)
}

// Models lists the supported model names in demo order.
func Models() []string { return []string{Model15Pro, Model15ProMax} }

// ForModel returns a fresh builder for the named model.
func ForModel(name string) (PhoneBuilder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Model15Pro:
		return NewPhone15ProBuilder(), nil
	case Model15ProMax:
		return NewPhone15ProMaxBuilder(), nil
	default:
		return nil, UnknownModelError{Name: name}
	}
}
