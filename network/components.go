// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: connected components by breadth-first search, independent of any
// union-find bookkeeping.

package network

import (
	"fmt"
	"sort"
)

// ComponentSizes returns the sizes of the connected components of the graph
// on slots 0..order-1 formed by edges, largest first. Every slot counts,
// so isolated slots are components of size 1.
//
// Steps:
//  1. Build adjacency lists from edges.
//  2. BFS from each unvisited slot in ascending order, counting visits.
//  3. Sort the counts descending.
//
// Complexity: O(order + len(edges)) time and space, plus the sort.
func ComponentSizes(order int, edges []Edge) ([]int, error) {
	if order < 0 {
		return nil, fmt.Errorf("ComponentSizes: order=%d: %w", order, ErrNegativeOrder)
	}

	// 1) Adjacency.
	adj := make([][]int, order)
	for i, e := range edges {
		if e.U < 0 || e.U >= order || e.V < 0 || e.V >= order {
			return nil, fmt.Errorf("ComponentSizes: edge %d (%d,%d): %w", i, e.U, e.V, ErrSlotOutOfRange)
		}
		adj[e.U] = append(adj[e.U], e.V)
		if e.U != e.V {
			adj[e.V] = append(adj[e.V], e.U)
		}
	}

	// 2) One BFS per component.
	visited := make([]bool, order)
	queue := make([]int, 0, order)
	var sizes []int
	for s := 0; s < order; s++ {
		if visited[s] {
			continue
		}
		visited[s] = true
		queue = append(queue[:0], s)
		size := 0
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			size++
			for _, v := range adj[u] {
				if !visited[v] {
					visited[v] = true
					queue = append(queue, v)
				}
			}
		}
		sizes = append(sizes, size)
	}

	// 3) Largest first.
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes, nil
}

// ComponentSizes returns the component sizes of the whole network.
func (nw *Network) ComponentSizes() []int {
	nw.mu.RLock()
	defer nw.mu.RUnlock()

	// Edges were validated on insertion.
	sizes, _ := ComponentSizes(nw.order, nw.edges)

	return sizes
}
