package dsu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func parents(d DSU) []int {
	out := make([]int, d.Len())
	for i := range out {
		out[i] = d.Parent(i)
	}
	return out
}

func sizes(d DSU) []int {
	out := make([]int, d.Len())
	for i := range out {
		out[i] = d.Size(i)
	}
	return out
}

func TestNew(t *testing.T) {
	d := New(5)

	require.Equal(t, []int{0, 1, 2, 3, 4}, parents(d), "Every index should start as its own parent")
	require.Equal(t, []int{1, 1, 1, 1, 1}, sizes(d), "Every set should start with size 1")
}

func TestUnion(t *testing.T) {
	t.Run("merging sets attaches smaller under larger", func(t *testing.T) {
		d := New(5)
		d.Union(0, 1)
		require.Equal(t, 2, d.Size(0), "Tie should keep the first root")

		d.Union(2, 3)
		d.Union(2, 4)
		require.Equal(t, 3, d.Size(2))

		d.Union(0, 2)
		require.Equal(t, 5, d.Size(2), "Smaller set should be attached under the larger root")
		require.Equal(t, 2, d.Find(0))
	})

	t.Run("joining an index with itself is a no-op", func(t *testing.T) {
		d := New(3)
		d.Union(1, 1)

		require.Equal(t, []int{0, 1, 2}, parents(d))
		require.Equal(t, []int{1, 1, 1}, sizes(d))
	})

	t.Run("joining members of the same set is a no-op", func(t *testing.T) {
		d := New(3)
		d.Union(0, 1)
		d.Union(1, 0)

		require.Equal(t, 2, d.Size(0), "Size should not be added twice")
		require.True(t, d.Same(0, 1))
		require.False(t, d.Same(0, 2))
	})
}

func TestFindAllRoots(t *testing.T) {
	t.Run("flattens every path", func(t *testing.T) {
		d := New(5)
		d.Union(0, 1)
		d.Union(2, 3)
		d.Union(2, 4)
		d.Union(0, 2)

		roots := d.FindAllRoots()

		require.Equal(t, []int{2, 2, 2, 2, 2}, roots)
		require.Equal(t, []int{2, 2, 2, 2, 2}, parents(d), "Parents should point straight at the root")
	})

	t.Run("resolves long chains", func(t *testing.T) {
		d := New(8)
		// Build the chain 7 -> 6 -> ... -> 0 by hand.
		for i := 1; i < 8; i++ {
			d.parent[i] = i - 1
		}

		roots := d.FindAllRoots()

		for i, r := range roots {
			require.Equal(t, 0, r, "index %d should resolve to the chain root", i)
		}
	})

	t.Run("returns a copy", func(t *testing.T) {
		d := New(3)
		roots := d.FindAllRoots()
		roots[0] = 2

		require.Equal(t, 0, d.Parent(0))
	})
}

func TestResetWhere(t *testing.T) {
	t.Run("masked indices become singletons", func(t *testing.T) {
		d := New(4)
		d.Union(0, 1)
		d.Union(2, 3)

		d.ResetWhere([]bool{true, true, false, false})

		require.Equal(t, []int{0, 1, 2, 2}, parents(d))
		require.Equal(t, []int{1, 1, 2, 1}, sizes(d))
	})

	t.Run("panics on a mask of the wrong length", func(t *testing.T) {
		d := New(4)
		require.Panics(t, func() { d.ResetWhere([]bool{true}) })
	})
}

func TestClone(t *testing.T) {
	d := New(3)
	c := d.Clone()
	c.Union(0, 1)

	require.False(t, d.Same(0, 1), "Original should be unaffected by mutations of the clone")
	require.True(t, c.Same(0, 1))
}
