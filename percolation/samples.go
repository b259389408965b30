package percolation

import (
	"context"
	"fmt"
	"math"
	"sort"
)

// Policy decides at which occupation state a sample point is recorded.
type Policy int

const (
	// AtOrAfter records p at the first state whose occupied fraction is ≥ p.
	AtOrAfter Policy = iota

	// AtOrBefore records p at the last state whose occupied fraction is ≤ p.
	AtOrBefore
)

// String returns the policy's configuration name.
func (p Policy) String() string {
	switch p {
	case AtOrAfter:
		return "at-or-after"
	case AtOrBefore:
		return "at-or-before"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a configuration name back to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "at-or-after", "":
		return AtOrAfter, nil
	case "at-or-before":
		return AtOrBefore, nil
	default:
		return 0, fmt.Errorf("ParsePolicy(%q): %w", s, ErrUnknownPolicy)
	}
}

func (p Policy) valid() bool {
	return p == AtOrAfter || p == AtOrBefore
}

// SamplePoints validates ps into [0,1], removes duplicates and sorts the
// result ascending. The input is not modified.
// Complexity: O(k log k).
func SamplePoints(ps []float64) ([]float64, error) {
	if len(ps) == 0 {
		return nil, ErrNoSamplePoints
	}
	out := make([]float64, 0, len(ps))
	for _, p := range ps {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return nil, fmt.Errorf("SamplePoints: p=%g not in [0,1]: %w", p, ErrInvalidProbability)
		}
		out = append(out, p)
	}
	sort.Float64s(out)

	// Deduplicate in place.
	k := 1
	for i := 1; i < len(out); i++ {
		if out[i] != out[k-1] {
			out[k] = out[i]
			k++
		}
	}

	return out[:k], nil
}

// Linspace returns n evenly spaced points from 0 to 1 inclusive; n = 1
// gives just 0.
func Linspace(n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("Linspace(%d): %w", n, ErrInvalidSampleCount)
	}
	out := make([]float64, n)
	if n == 1 {
		return out, nil
	}
	step := 1.0 / float64(n-1)
	for i := range out {
		out[i] = float64(i) * step
	}
	out[n-1] = 1

	return out, nil
}

// cancelCheckMask sets how often the sampling loop polls ctx (every 1024 edges).
const cancelCheckMask = 1<<10 - 1

// sweep is the sampling loop shared by both processes. It calls occupy for
// edge indices 0..m-1 in order, and emit(p, k) whenever sample point p is
// reached with k edges occupied. It stops once every point is emitted.
//
// Steps:
//  1. With no edges, emit only a point of exactly 0: no other state exists
//     to place a point at.
//  2. Emit each point the policy places at 0 edges.
//  3. Occupy edge i; emit each pending point the policy places at i+1 edges.
func sweep(ctx context.Context, points []float64, policy Policy, m int,
	occupy func(i int), emit func(p float64, k int) error) error {
	next := 0

	// 1) Degenerate network.
	if m == 0 {
		if len(points) > 0 && points[0] == 0 {
			return emit(points[0], 0)
		}
		return nil
	}

	// 2) Initial state, nothing occupied.
	fm := float64(m)
	for next < len(points) && policy.reached(points[next], 0, m, fm) {
		if err := emit(points[next], 0); err != nil {
			return err
		}
		next++
	}

	// 3) Walk the permutation.
	for i := 0; i < m && next < len(points); i++ {
		if i&cancelCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		occupy(i)
		for next < len(points) && policy.reached(points[next], i+1, m, fm) {
			if err := emit(points[next], i+1); err != nil {
				return err
			}
			next++
		}
	}

	return nil
}

// reached reports whether point p is recorded once k of m edges are occupied.
func (p Policy) reached(point float64, k, m int, fm float64) bool {
	if p == AtOrBefore {
		// Last state not exceeding point: occupying one more edge would overshoot.
		return k == m || float64(k+1)/fm > point
	}

	return float64(k)/fm >= point
}
