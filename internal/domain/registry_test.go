package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	a := ModuleDescriptor{Path: "modules/a.yaml"}
	b := ModuleDescriptor{Path: "modules/b.yaml"}
	c := ModuleDescriptor{Path: "modules/c.yaml"}

	t.Run("append preserves insertion order", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Append(a))
		require.NoError(t, r.Append(b))
		require.NoError(t, r.Append(c))

		assert.Equal(t, []ModuleDescriptor{a, b, c}, r.Contents)
	})

	t.Run("duplicate append fails", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Append(a))
		assert.ErrorIs(t, r.Append(a), ErrAlreadyRegistered)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("same path different external flag are distinct", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Append(ModuleDescriptor{Path: "shared/mod"}))
		assert.NoError(t, r.Append(ModuleDescriptor{Path: "shared/mod", External: true}))
	})

	t.Run("remove deletes in place without reordering", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Append(a))
		require.NoError(t, r.Append(b))
		require.NoError(t, r.Append(c))

		require.NoError(t, r.Remove(b))
		assert.Equal(t, []ModuleDescriptor{a, c}, r.Contents)

		// re-adding a removed entry appends at the end
		require.NoError(t, r.Append(b))
		assert.Equal(t, []ModuleDescriptor{a, c, b}, r.Contents)
	})

	t.Run("remove of absent entry fails", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Append(a))
		assert.ErrorIs(t, r.Remove(b), ErrNotRegistered)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("contains", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Append(a))
		assert.True(t, r.Contains(a))
		assert.False(t, r.Contains(b))
		assert.False(t, r.Contains(ModuleDescriptor{Path: a.Path, External: true}))
	})
}
