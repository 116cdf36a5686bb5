package prototype

// Sheep is a named value object copied with a shallow clone.
type Sheep struct {
	name string
}

// NewSheep returns a sheep called name.
func NewSheep(name string) *Sheep { return &Sheep{name: name} }

func (s *Sheep) Name() string { return s.name }
func (s *Sheep) SetName(name string) { s.name = name }

// Clone returns a shallow copy of s, or nil for a nil sheep.
func (s *Sheep) Clone() *Sheep {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}
