package prototype

// Human is owned by a Trophy.
type Human struct {
	Name string `yaml:"name"`
}

// NewHuman returns a human called name.
func NewHuman(name string) *Human { return &Human{Name: name} }

// Clone returns a copy of h, or nil for a nil human.
func (h *Human) Clone() *Human {
	if h == nil {
		return nil
	}
	cp := *h
	return &cp
}

// Trophy owns one Human by reference.
type Trophy struct {
	Human *Human `yaml:"human"`
}

// NewTrophy returns a trophy awarded to h. The trophy takes ownership of h.
func NewTrophy(h *Human) *Trophy { return &Trophy{Human: h} }

// Name returns the name of the owning human, or "" when there is none.
func (t *Trophy) Name() string {
	if t.Human == nil {
		return ""
	}
	return t.Human.Name
}

// SetName renames the owned human. It is a no-op when there is none.
func (t *Trophy) SetName(name string) {
	if t.Human == nil {
		return
	}
	t.Human.Name = name
}

// Clone returns a deep copy of t: the owned Human is duplicated, not shared.
func (t *Trophy) Clone() *Trophy {
	if t == nil {
		return nil
	}
	return &Trophy{Human: t.Human.Clone()}
}
