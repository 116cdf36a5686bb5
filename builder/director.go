package builder

// Director drives a PhoneBuilder through its steps in a fixed order.
type Director struct {
	builder PhoneBuilder
}

// NewDirector binds a director to b.
//
// It panics on a nil builder: a director without one is a wiring mistake.
func NewDirector(b PhoneBuilder) *Director {
	if b == nil {
		panic("builder: NewDirector(nil)")
	}
	return &Director{builder: b}
}

// CreatePhone runs size, fps, focal and battery in that order and returns the
// finished phone.
func (d *Director) CreatePhone() Phone {
	d.builder.BuildSize()
	d.builder.BuildFPS()
	d.builder.BuildFocal()
	d.builder.BuildBattery()
	return d.builder.Phone()
}
