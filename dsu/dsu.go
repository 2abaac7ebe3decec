// Package dsu tracks connected stone groups with a disjoint-set union over
// flattened board cells.
package dsu

import "fmt"

// DSU is a disjoint-set union over the indices [0, n).
// size[root] counts every index ever joined into root, including indices that
// have since been reset by ResetWhere; it is only meaningful for union by size.
type DSU struct {
	parent []int
	size   []int
}

// New returns n singleton sets.
func New(n int) DSU {
	d := DSU{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
	return d
}

// Clone returns a deep copy; mutating it never touches d.
func (d DSU) Clone() DSU {
	parent := make([]int, len(d.parent))
	copy(parent, d.parent)
	size := make([]int, len(d.size))
	copy(size, d.size)
	return DSU{parent: parent, size: size}
}

func (d DSU) Len() int {
	d.check()
	return len(d.parent)
}

func (d DSU) Parent(i int) int { return d.parent[i] }
func (d DSU) Size(i int) int   { return d.size[i] }

// Find returns the root of i without compressing any path.
func (d DSU) Find(i int) int {
	for d.parent[i] != i {
		i = d.parent[i]
	}
	return i
}

func (d DSU) Same(a, b int) bool {
	return d.Find(a) == d.Find(b)
}

// find resolves the root of i, halving the path on the way.
func (d *DSU) find(i int) int {
	for d.parent[i] != i {
		d.parent[i] = d.parent[d.parent[i]]
		i = d.parent[i]
	}
	return i
}

// Union merges the sets holding a and b. The smaller set is attached under the
// larger one; on a tie the root of a is kept.
func (d *DSU) Union(a, b int) {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return
	}
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
}

// FindAllRoots resolves the root of every index at once by pointer doubling.
// The flattened parents are kept, so afterwards every index points straight at
// its root. The returned slice is a copy.
func (d *DSU) FindAllRoots() []int {
	d.check()

	n := len(d.parent)
	for rounds := 0; ; rounds++ {
		if rounds > n {
			panic(fmt.Sprintf("dsu: parent pointers do not converge after %d rounds", rounds))
		}
		changed := false
		for i, p := range d.parent {
			if gp := d.parent[p]; gp != p {
				d.parent[i] = gp
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	roots := make([]int, n)
	copy(roots, d.parent)
	return roots
}

// ResetWhere turns every index i with mask[i] set back into a singleton.
func (d *DSU) ResetWhere(mask []bool) {
	if len(mask) != len(d.parent) {
		panic(fmt.Sprintf("dsu: reset mask has %d entries, want %d", len(mask), len(d.parent)))
	}
	for i, reset := range mask {
		if reset {
			d.parent[i] = i
			d.size[i] = 1
		}
	}
}

func (d DSU) check() {
	if len(d.parent) != len(d.size) {
		panic(fmt.Sprintf("dsu: parent has %d entries but size has %d", len(d.parent), len(d.size)))
	}
}
