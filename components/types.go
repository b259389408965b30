package components

import (
	"errors"
	"fmt"
)

// ErrInvariant marks a broken union-find invariant. It is only ever carried
// by a panic: correct drivers never trigger it.
var ErrInvariant = errors.New("components: invariant violated")

// Unclaimed is the generation tag of a slot that no pass has touched yet.
// Such a slot behaves as an isolated singleton.
const Unclaimed = 0

// singleton is the stored value of a root whose component has one slot.
const singleton = -1

// invariant panics with a formatted error wrapping ErrInvariant.
func invariant(format string, args ...interface{}) {
	panic(fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvariant))
}
