package vectree

import (
	"encoding/json"
	"fmt"
	"io"
)

// The serialized form mirrors the in-memory layout: a flat pre-order node
// array where each entry carries its child count, branch stride, and parent
// offset. Loading therefore needs no pointer fixup pass, only a structural
// validation of the decoded indices.

type nodeJSON[P any] struct {
	Payload  P      `json:"payload"`
	Children uint32 `json:"children"`
	Stride   uint32 `json:"stride"`
	Parent   uint32 `json:"parent"`
}

type treeJSON[P any] struct {
	Nodes []nodeJSON[P] `json:"nodes"`
}

// SaveJSON writes the forest to w as an indented JSON document.
func (t *Tree[P]) SaveJSON(w io.Writer) error {
	doc := treeJSON[P]{Nodes: make([]nodeJSON[P], len(t.nodes))}
	for i, n := range t.nodes {
		doc.Nodes[i] = nodeJSON[P]{
			Payload:  n.Payload,
			Children: n.NbrChildren,
			Stride:   n.BranchStride,
			Parent:   n.ParentOfs,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("vectree: encode tree: %w", err)
	}
	return nil
}

// LoadJSON reads a forest written by SaveJSON. The payload type must match
// the one the document was saved with, up to JSON compatibility.
func LoadJSON[P comparable](r io.Reader) (*Tree[P], error) {
	return LoadJSONFunc(r, func(a, b P) bool { return a == b })
}

// LoadJSONFunc is LoadJSON for payload types that are not comparable, using
// eq to locate payloads. The decoded structure is validated before the tree
// is returned; a tampered or truncated document yields ErrCorruptTree.
func LoadJSONFunc[P any](r io.Reader, eq func(a, b P) bool) (*Tree[P], error) {
	var doc treeJSON[P]
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("vectree: decode tree: %w", err)
	}

	t := NewFunc(eq)
	t.nodes = make([]Node[P], len(doc.Nodes))
	for i, n := range doc.Nodes {
		t.nodes[i] = Node[P]{
			Payload:      n.Payload,
			NbrChildren:  n.Children,
			BranchStride: n.Stride,
			ParentOfs:    n.Parent,
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
