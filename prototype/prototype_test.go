package prototype_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/sghaida/creational/prototype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time checks.
var (
	_ prototype.Prototype[*prototype.Sheep]  = (*prototype.Sheep)(nil)
	_ prototype.Prototype[*prototype.Human]  = (*prototype.Human)(nil)
	_ prototype.Prototype[*prototype.Trophy] = (*prototype.Trophy)(nil)
)

//
// -----------------------------------------------------------------------------
// Sheep (shallow clone)
// -----------------------------------------------------------------------------

// TestSheep_CloneIsIndependent verifies renaming a clone leaves the original untouched.
func TestSheep_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	lazy := prototype.NewSheep("lazySheep")
	duoLi := lazy.Clone()

	require.NotNil(t, duoLi)
	assert.NotSame(t, lazy, duoLi)
	assert.Equal(t, lazy, duoLi, "clone must be field-equal at clone time")

	duoLi.SetName("duoLi")
	assert.Equal(t, "lazySheep", lazy.Name())
	assert.Equal(t, "duoLi", duoLi.Name())

	lazy.SetName("sleepy")
	assert.Equal(t, "duoLi", duoLi.Name())
}

func TestSheep_CloneNil(t *testing.T) {
	t.Parallel()

	var s *prototype.Sheep
	assert.Nil(t, s.Clone())
}

func TestSheep_Deterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, prototype.NewSheep("a").Clone(), prototype.NewSheep("a").Clone())
}

//
// -----------------------------------------------------------------------------
// Trophy (deep clone)
// -----------------------------------------------------------------------------

// TestTrophy_CloneDuplicatesHuman verifies the nested Human is not shared.
func TestTrophy_CloneDuplicatesHuman(t *testing.T) {
	t.Parallel()

	original := prototype.NewTrophy(prototype.NewHuman("ZhangSan"))
	cp := original.Clone()

	require.NotNil(t, cp)
	assert.NotSame(t, original, cp)
	assert.NotSame(t, original.Human, cp.Human)
	assert.Nil(t, deep.Equal(original, cp))

	cp.SetName("LiSi")
	assert.Equal(t, "ZhangSan", original.Name())
	assert.Equal(t, "LiSi", cp.Name())
}

// TestTrophy_ShallowCopyAliases documents what Clone avoids: a plain struct
// copy shares the Human.
func TestTrophy_ShallowCopyAliases(t *testing.T) {
	t.Parallel()

	original := prototype.NewTrophy(prototype.NewHuman("ZhangSan"))
	shallow := *original
	shallow.SetName("LiSi")

	assert.Equal(t, "LiSi", original.Name())
}

func TestTrophy_NilHuman(t *testing.T) {
	t.Parallel()

	tr := prototype.NewTrophy(nil)
	assert.Equal(t, "", tr.Name())
	tr.SetName("ignored")
	assert.Equal(t, "", tr.Name())

	cp := tr.Clone()
	require.NotNil(t, cp)
	assert.Nil(t, cp.Human)

	var nilTrophy *prototype.Trophy
	assert.Nil(t, nilTrophy.Clone())
}

func TestHuman_Clone(t *testing.T) {
	t.Parallel()

	h := prototype.NewHuman("ZhangSan")
	cp := h.Clone()
	assert.NotSame(t, h, cp)
	assert.Equal(t, h, cp)

	var nilHuman *prototype.Human
	assert.Nil(t, nilHuman.Clone())
}
