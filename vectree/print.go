package vectree

import (
	"fmt"
	"io"
	"strings"
)

// DumpOptions controls how Dump renders a forest.
type DumpOptions struct {
	// MaxDepth limits how many levels are printed, 0 meaning no limit.
	// Roots are level 0, so MaxDepth 1 prints only roots.
	MaxDepth int

	// ShowInfo appends each node's child count, branch stride, and parent
	// offset to its line.
	ShowInfo bool
}

// Dump writes an indented pre-order rendering of the forest, one node per
// line with two spaces per level. Payloads are formatted with %v.
func (t *Tree[P]) Dump(w io.Writer, opts DumpOptions) error {
	var err error
	t.DepthFirstLevel(func(p *P, index, level int) {
		if err != nil {
			return
		}
		if opts.MaxDepth > 0 && level >= opts.MaxDepth {
			return
		}
		var sb strings.Builder
		for n := level; n > 0; n-- {
			sb.WriteString("  ")
		}
		fmt.Fprintf(&sb, "%v", *p)
		if opts.ShowInfo {
			n := t.nodes[index]
			fmt.Fprintf(&sb, " [children=%d stride=%d parent=%d]",
				n.NbrChildren, n.BranchStride, n.ParentOfs)
		}
		if _, werr := fmt.Fprintln(w, sb.String()); werr != nil {
			err = werr
		}
	})
	return err
}

// String renders the forest as Dump does with default options.
func (t *Tree[P]) String() string {
	var sb strings.Builder
	_ = t.Dump(&sb, DumpOptions{})
	return sb.String()
}
