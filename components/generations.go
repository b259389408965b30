package components

// frame is one entered percolation pass.
type frame struct {
	generation int // id allocated on Enter
	boundary   int // generation of the spawning pass, or Unclaimed
	savedGCC   int // caller's GCC counter, restored on Leave
}

// GenerationTracker scopes a Tracker's slots to a stack of nested passes.
//
// owner[s] is the generation that last claimed slot s. Generation ids are
// allocated once per Enter and only ever increase, so every generation newer
// than a pass's boundary is either the pass itself or one that has already
// returned.
type GenerationTracker struct {
	base   *Tracker
	owner  []int
	frames []frame
	next   int // last generation id handed out
	path   []int
}

// NewGenerationTracker returns a tracker of n unclaimed slots and no pass entered.
// Complexity: O(n).
func NewGenerationTracker(n int) *GenerationTracker {
	return &GenerationTracker{
		base:  NewTracker(n),
		owner: make([]int, n),
	}
}

// Reset unclaims every slot, drops all frames and restarts generation ids.
// Complexity: O(N).
func (g *GenerationTracker) Reset() {
	g.base.Reset()
	for i := range g.owner {
		g.owner[i] = Unclaimed
	}
	g.frames = g.frames[:0]
	g.next = Unclaimed
}

// Enter starts a new pass nested inside the current one and returns its
// generation id. The new pass's boundary is the current generation
// (Unclaimed at top level); its GCC counter starts at 1.
func (g *GenerationTracker) Enter() int {
	boundary := Unclaimed
	if len(g.frames) > 0 {
		boundary = g.frames[len(g.frames)-1].generation
	}
	g.next++
	g.frames = append(g.frames, frame{
		generation: g.next,
		boundary:   boundary,
		savedGCC:   g.base.GCC(),
	})
	g.base.setGCC(1)

	return g.next
}

// Leave ends the current pass and restores the caller's GCC counter.
// Slots the pass claimed keep their tag; later passes may reclaim them.
func (g *GenerationTracker) Leave() {
	f := g.top()
	g.frames = g.frames[:len(g.frames)-1]
	g.base.setGCC(f.savedGCC)
}

// Len returns the number of node slots.
func (g *GenerationTracker) Len() int { return g.base.Len() }

// Depth returns the number of passes currently entered.
func (g *GenerationTracker) Depth() int { return len(g.frames) }

// Generation returns the id of the current pass.
func (g *GenerationTracker) Generation() int { return g.top().generation }

// Boundary returns the generation that spawned the current pass.
func (g *GenerationTracker) Boundary() int { return g.top().boundary }

// GCC returns the current pass's largest component size.
func (g *GenerationTracker) GCC() int { return g.base.GCC() }

// Owner returns the generation tag of slot.
func (g *GenerationTracker) Owner(slot int) int {
	g.base.check(slot)

	return g.owner[slot]
}

// Available counts the slots the current pass may use: everything not owned
// by its boundary generation, or every slot at top level.
// Complexity: O(N).
func (g *GenerationTracker) Available() int {
	boundary := g.top().boundary
	if boundary == Unclaimed {
		return len(g.owner)
	}
	n := 0
	for _, o := range g.owner {
		if o != boundary {
			n++
		}
	}

	return n
}

// Resolve returns the root of slot's component within the current pass, or
// false when the slot belongs to a live ancestor and must not be touched.
//
// Rules, in order:
//  1. Unclaimed: claim it for this generation as a fresh singleton.
//  2. Owned by this generation: walk to its root within the generation,
//     compressing the path as Tracker.FindRoot does.
//  3. Owned by a generation newer than the boundary: the owner has returned,
//     so reset the slot to a singleton and claim it.
//  4. Otherwise the owner is the boundary or older: inaccessible.
func (g *GenerationTracker) Resolve(slot int) (int, bool) {
	g.base.check(slot)
	f := g.top()

	switch owner := g.owner[slot]; {
	case owner == Unclaimed:
		g.claim(slot, f.generation)
		return slot, true

	case owner == f.generation:
		return g.findRoot(slot, f.generation), true

	case owner > f.boundary:
		g.claim(slot, f.generation)
		return slot, true

	default:
		return -1, false
	}
}

// Occupy joins the components holding n and m within the current pass.
// It is a no-op returning (0, false) when either slot is inaccessible or
// both already share a root.
func (g *GenerationTracker) Occupy(n, m int) (int, bool) {
	// Both endpoints are resolved even if the first is inaccessible: resolving
	// claims the other endpoint for this generation.
	nr, nok := g.Resolve(n)
	mr, mok := g.Resolve(m)
	if !nok || !mok || nr == mr {
		return 0, false
	}

	return g.base.Merge(nr, mr), true
}

// claim re-tags slot into generation as an isolated singleton.
func (g *GenerationTracker) claim(slot, generation int) {
	g.base.makeSingleton(slot)
	g.owner[slot] = generation
}

// findRoot is FindRoot restricted to one generation. A pass's slots cannot
// be re-tagged while it is on the stack, so a parent link that leaves the
// generation means the stack discipline was broken.
func (g *GenerationTracker) findRoot(slot, generation int) int {
	g.path = g.path[:0]
	root := slot
	for {
		p := g.base.parentOf(root)
		if p < 0 {
			break
		}
		if g.owner[p] != generation {
			invariant("slot %d of generation %d links to slot %d of generation %d", root, generation, p, g.owner[p])
		}
		g.path = append(g.path, root)
		root = p
	}
	for i := 0; i+1 < len(g.path); i++ {
		g.base.setParent(g.path[i], root)
	}

	return root
}

// top returns the current frame; calling it with no pass entered is a
// driver bug.
func (g *GenerationTracker) top() frame {
	if len(g.frames) == 0 {
		invariant("no pass entered")
	}

	return g.frames[len(g.frames)-1]
}
