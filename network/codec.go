// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: YAML serialization of a Network as {nodes, edges, loops, multi}.

package network

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the on-disk form of a Network.
type document struct {
	Nodes int      `yaml:"nodes"`
	Loops bool     `yaml:"loops,omitempty"`
	Multi bool     `yaml:"multi,omitempty"`
	Edges [][2]int `yaml:"edges,flow"`
}

// Decode reads a YAML network document from r. Edges are added in document
// order, so every constraint AddEdge enforces applies to the file too.
func Decode(r io.Reader) (*Network, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("Decode: empty document: %w", ErrBadDocument)
		}
		return nil, fmt.Errorf("Decode: %v: %w", err, ErrBadDocument)
	}

	var opts []Option
	if doc.Loops {
		opts = append(opts, WithLoops())
	}
	if doc.Multi {
		opts = append(opts, WithMultiEdges())
	}
	nw, err := New(doc.Nodes, opts...)
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}
	for i, e := range doc.Edges {
		if err = nw.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("Decode: edge %d: %w", i, err)
		}
	}

	return nw, nil
}

// Encode writes nw to w as a YAML network document.
func (nw *Network) Encode(w io.Writer) error {
	nw.mu.RLock()
	doc := document{
		Nodes: nw.order,
		Loops: nw.allowLoops,
		Multi: nw.allowMulti,
		Edges: make([][2]int, len(nw.edges)),
	}
	for i, e := range nw.edges {
		doc.Edges[i] = [2]int{e.U, e.V}
	}
	nw.mu.RUnlock()

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return enc.Close()
}
