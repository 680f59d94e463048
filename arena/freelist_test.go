package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// White-box checks on the chain shape.

func Test_Chain_PushPop_HeadTailMarkers(t *testing.T) {
	p := New[int64]()
	h0, _ := p.Create(0)
	h1, _ := p.Create(1)

	// Both grows were single-slot, so the chain is empty now.
	require.Equal(t, NullOfs, p.freeFirst)
	require.Equal(t, NullOfs, p.freeLast)

	require.NoError(t, p.Destroy(h0))
	require.Equal(t, int32(0), p.freeFirst)
	require.Equal(t, int32(0), p.freeLast, "single entry is both head and tail")
	require.Equal(t, NullOfs, p.links[0])

	require.NoError(t, p.Destroy(h1))
	require.Equal(t, int32(1), p.freeFirst, "push goes to the front")
	require.Equal(t, int32(0), p.freeLast)
	require.Equal(t, int32(0), p.links[1])

	re, err := p.Create(2)
	require.NoError(t, err)
	require.Equal(t, h1.Ofs, re.Ofs)
	require.Equal(t, int32(0), p.freeFirst)
	require.Equal(t, int32(0), p.freeLast)
}

func Test_Chain_GrowthLinksAscending(t *testing.T) {
	p := New[int64]()
	for i := 0; i < 3; i++ {
		_, err := p.Create(int64(i))
		require.NoError(t, err)
	}
	// Third create grew to four slots and handed out slot 2; slot 3 remains.
	require.Equal(t, int32(3), p.freeFirst)
	require.Equal(t, int32(3), p.freeLast)
	require.Equal(t, NullOfs, p.links[3])
}

func Test_Chain_ExpandAppendsAfterExistingEntries(t *testing.T) {
	p := New[int64]()
	handles := make([]Handle[int64], 4)
	for i := range handles {
		handles[i], _ = p.Create(int64(i))
	}
	require.NoError(t, p.Destroy(handles[1]))

	// Extend storage by hand and thread the new slots; they must attach
	// after the existing entry, in ascending order.
	p.mu.Lock()
	p.values = append(p.values, make([]int64, 4)...)
	p.links = append(p.links, 0, 0, 0, 0)
	p.expandFreelist(4, 8)
	p.mu.Unlock()

	var chain []int32
	p.mu.Lock()
	for cur := p.freeFirst; cur != NullOfs; cur = p.links[cur] {
		chain = append(chain, cur)
	}
	p.mu.Unlock()

	require.Equal(t, []int32{1, 4, 5, 6, 7}, chain)
	require.Equal(t, int32(7), p.freeLast)
}
