package components

// Tracker is a disjoint-set-with-size structure over N node slots.
//
// parent[s] >= 0 is the parent slot of a non-root s; parent[s] < 0 marks a
// root whose component holds -parent[s] slots. gcc is the largest component
// size observed since the last Reset, starting at 1.
type Tracker struct {
	parent []int
	gcc    int
	path   []int // scratch for FindRoot
}

// NewTracker returns a Tracker of n singleton components with GCC = 1.
// Complexity: O(n).
func NewTracker(n int) *Tracker {
	t := &Tracker{parent: make([]int, n)}
	t.Reset()

	return t
}

// Reset makes every slot a singleton again and sets the GCC back to 1.
// Complexity: O(N).
func (t *Tracker) Reset() {
	for i := range t.parent {
		t.parent[i] = singleton
	}
	t.gcc = 1
}

// Len returns the number of node slots.
func (t *Tracker) Len() int { return len(t.parent) }

// GCC returns the largest component size seen since the last Reset.
func (t *Tracker) GCC() int { return t.gcc }

// IsRoot reports whether slot is the root of its component.
func (t *Tracker) IsRoot(slot int) bool {
	t.check(slot)

	return t.parent[slot] < 0
}

// FindRoot returns the root of slot's component, repointing every slot on
// the way directly at the root. A second call on the same slot performs no
// writes.
//
// Steps:
//  1. Walk parent links from slot, recording each non-root visited.
//  2. Repoint every recorded slot except the last (already a child of the root).
//
// Complexity: amortised near O(1); O(path length) for this call.
func (t *Tracker) FindRoot(slot int) int {
	t.check(slot)

	// 1) Walk to the root.
	t.path = t.path[:0]
	root := slot
	for t.parent[root] >= 0 {
		t.path = append(t.path, root)
		root = t.parent[root]
	}

	// 2) Compress. The final visited slot already points at root.
	for i := 0; i+1 < len(t.path); i++ {
		t.parent[t.path[i]] = root
	}

	return root
}

// Merge hangs root b's tree under root a and returns the merged size.
// Both arguments must be distinct roots.
// Complexity: O(1).
func (t *Tracker) Merge(a, b int) int {
	t.check(a)
	t.check(b)
	if a == b {
		invariant("Merge(%d,%d): same component", a, b)
	}
	if t.parent[a] >= 0 || t.parent[b] >= 0 {
		invariant("Merge(%d,%d): argument is not a root", a, b)
	}

	t.parent[a] += t.parent[b]
	t.parent[b] = a
	size := -t.parent[a]
	if size > t.gcc {
		t.gcc = size
	}

	return size
}

// Occupy joins the components holding n and m. It returns the size of the
// merged component and true, or (0, false) when n and m were already
// connected.
func (t *Tracker) Occupy(n, m int) (int, bool) {
	nr := t.FindRoot(n)
	mr := t.FindRoot(m)
	if nr == mr {
		return 0, false
	}

	return t.Merge(nr, mr), true
}

// Size returns the size of the component holding slot.
func (t *Tracker) Size(slot int) int {
	return -t.parent[t.FindRoot(slot)]
}

// Roots returns the number of components.
// Complexity: O(N).
func (t *Tracker) Roots() int {
	n := 0
	for _, v := range t.parent {
		if v < 0 {
			n++
		}
	}

	return n
}

// makeSingleton detaches slot from whatever it belonged to. Only generation
// scoping may do this: the old component's size is not adjusted.
func (t *Tracker) makeSingleton(slot int) {
	t.parent[slot] = singleton
}

// parentOf returns the raw stored value for slot.
func (t *Tracker) parentOf(slot int) int { return t.parent[slot] }

// setParent repoints a non-root slot.
func (t *Tracker) setParent(slot, p int) { t.parent[slot] = p }

// setGCC replaces the running GCC counter; used to scope it per generation.
func (t *Tracker) setGCC(v int) { t.gcc = v }

// check panics when slot is outside [0, N).
func (t *Tracker) check(slot int) {
	if slot < 0 || slot >= len(t.parent) {
		invariant("slot %d not in [0,%d)", slot, len(t.parent))
	}
}
