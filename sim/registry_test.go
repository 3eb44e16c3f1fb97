package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_Add_PreservesInsertionOrder(t *testing.T) {
	r := NewRegistry[*Location]("location")
	for _, id := range []string{"c", "a", "b"} {
		assert.NoError(t, r.Add(&Location{ID: id}))
	}

	assert.Equal(t, []string{"c", "a", "b"}, r.IDs())
	var seen []string
	r.Each(func(l *Location) { seen = append(seen, l.ID) })
	assert.Equal(t, []string{"c", "a", "b"}, seen)
	assert.Equal(t, 3, r.Len())
}

func TestRegistry_Add_DuplicateRejected(t *testing.T) {
	// GIVEN a registry holding "x"
	r := NewRegistry[*Location]("location")
	first := &Location{ID: "x", Name: "first"}
	assert.NoError(t, r.Add(first))

	// WHEN "x" is added again
	err := r.Add(&Location{ID: "x", Name: "second"})

	// THEN the original is kept and ErrDuplicateKey is returned
	assert.True(t, errors.Is(err, ErrDuplicateKey), "got %v", err)
	assert.Contains(t, err.Error(), `location "x"`)
	got, ok := r.Get("x")
	assert.True(t, ok)
	assert.Same(t, first, got)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_IDs_ReturnsCopy(t *testing.T) {
	r := NewRegistry[*Location]("location")
	assert.NoError(t, r.Add(&Location{ID: "a"}))

	ids := r.IDs()
	ids[0] = "mutated"

	assert.True(t, r.Has("a"))
	assert.Equal(t, []string{"a"}, r.IDs())
}

func TestRegistry_Get_Unknown(t *testing.T) {
	r := NewRegistry[*Facility]("facility")
	got, ok := r.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.False(t, r.Has("missing"))
}
