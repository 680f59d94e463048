package arena

import (
	"fmt"
	"strings"
)

// String returns a one-line summary of the pool state.
func (p *Pool[T]) String() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fmt.Sprintf("Pool[%s]: slots=%d free=%d head=%d",
		p.label, len(p.values), p.countFreeLocked(), p.freeFirst)
}

// DebugString renders the full pool state: the summary line, the free chain
// as slot indices, and a per-slot [U]sed/[F]ree layout map.
func (p *Pool[T]) DebugString() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Pool[%s]: slots=%d free=%d head=%d\n",
		p.label, len(p.values), p.countFreeLocked(), p.freeFirst)

	b.WriteString("  free-list: ")
	for cur := p.freeFirst; cur != NullOfs; cur = p.links[cur] {
		fmt.Fprintf(&b, "%d -> ", cur)
	}
	b.WriteString("null\n")

	b.WriteString("  layout: ")
	free := p.freeBits()
	for i := range p.values {
		if free.Get(i) {
			b.WriteString("[F]")
		} else {
			b.WriteString("[U]")
		}
	}
	b.WriteByte('\n')
	return b.String()
}
