package experiment

import (
	"fmt"
	"strings"
)

// Point aggregates every trial's sample at one (depth, context, p).
type Point struct {
	Depth   int       `json:"depth" yaml:"depth"`
	Context []float64 `json:"context,omitempty" yaml:"context,omitempty,flow"`
	P       float64   `json:"p" yaml:"p"`
	Trials  int       `json:"trials" yaml:"trials"`
	MeanGCC float64   `json:"mean_gcc" yaml:"mean_gcc"`
	MaxGCC  int       `json:"max_gcc" yaml:"max_gcc"`
}

// Summarise folds the samples of trials into points, ordered by first
// appearance. Trials share sample points, so for a basic process this is
// one point per sample point, and for a residual process the depth-first
// order of the first trial.
// Complexity: O(S·D) for S samples at depth at most D.
func Summarise(trials []Trial) []Point {
	var (
		points []Point
		sums   []int
		index  = map[string]int{}
	)
	for _, t := range trials {
		for _, s := range t.Samples {
			key := pointKey(s.Depth, s.Context, s.P)
			i, ok := index[key]
			if !ok {
				i = len(points)
				index[key] = i
				points = append(points, Point{
					Depth:   s.Depth,
					Context: append([]float64(nil), s.Context...),
					P:       s.P,
				})
				sums = append(sums, 0)
			}
			pt := &points[i]
			pt.Trials++
			sums[i] += s.GCC
			if s.GCC > pt.MaxGCC {
				pt.MaxGCC = s.GCC
			}
		}
	}
	for i := range points {
		points[i].MeanGCC = float64(sums[i]) / float64(points[i].Trials)
	}

	return points
}

func pointKey(depth int, ctx []float64, p float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d", depth)
	for _, c := range ctx {
		fmt.Fprintf(&b, "/%v", c)
	}
	fmt.Fprintf(&b, "|%v", p)

	return b.String()
}
