package arena

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/arenakit/internal/bitset"
)

// Test_Fuzz_RandomCreateDestroy_GuardInvariants performs random create/destroy
// and validates pool invariants after every step.
func Test_Fuzz_RandomCreateDestroy_GuardInvariants(t *testing.T) {
	p := New[int64]()
	rng := rand.New(rand.NewSource(42)) // Fixed seed for reproducibility

	live := map[int32]int64{} // offset -> expected value
	for i := 0; i < 500; i++ {
		if len(live) == 0 || rng.Intn(10) < 7 {
			v := rng.Int63()
			h, err := p.Create(v)
			require.NoError(t, err, "step %d: create", i)
			_, dup := live[h.Ofs]
			require.False(t, dup, "step %d: offset %d handed out while live", i, h.Ofs)
			live[h.Ofs] = v
		} else {
			var ofs int32
			for o := range live {
				ofs = o
				break
			}
			require.NoError(t, p.Destroy(Handle[int64]{Ofs: ofs}), "step %d: destroy 0x%X", i, ofs)
			delete(live, ofs)
		}

		require.NoError(t, validatePoolInvariants(p, len(live)), "step %d", i)
	}

	// Every tracked element still reads back.
	for ofs, want := range live {
		v, err := p.Get(Handle[int64]{Ofs: ofs})
		require.NoError(t, err)
		require.Equal(t, want, *v)
	}
	t.Logf("500 random operations completed, %d live at end", len(live))
}

// validatePoolInvariants checks the free chain and counters.
func validatePoolInvariants(p *Pool[int64], wantLive int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	total := len(p.values)
	seen := bitset.New(total)
	freeCount := 0
	last := NullOfs
	for cur := p.freeFirst; cur != NullOfs; cur = p.links[cur] {
		if cur < 0 || int(cur) >= total {
			return &invariantError{fmt.Sprintf("free link out of range: %d", cur)}
		}
		if seen.Get(int(cur)) {
			return &invariantError{fmt.Sprintf("free chain cycle at slot %d", cur)}
		}
		seen.Set(int(cur))
		freeCount++
		last = cur
	}

	if p.freeLast != last {
		return &invariantError{fmt.Sprintf("freeLast=%d but chain ends at %d", p.freeLast, last)}
	}
	if (p.freeFirst == NullOfs) != (p.freeLast == NullOfs) {
		return &invariantError{"head/tail null markers disagree"}
	}
	if used := total - freeCount; used != wantLive {
		return &invariantError{fmt.Sprintf("used=%d but %d handles are live", used, wantLive)}
	}
	return nil
}

type invariantError struct {
	msg string
}

func (e *invariantError) Error() string {
	return "invariant violation: " + e.msg
}

// Test_Fuzz_StressCreateDestroy performs intensive create/destroy cycles.
func Test_Fuzz_StressCreateDestroy(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping stress test in short mode")
	}

	p := New[int64]()
	rng := rand.New(rand.NewSource(12345))

	for round := 0; round < 10; round++ {
		handles := make([]Handle[int64], 0, 200)
		for n := 0; n < 200; n++ {
			h, err := p.Create(rng.Int63())
			require.NoError(t, err)
			handles = append(handles, h)
		}
		// Free in shuffled order so the chain ends up scrambled.
		rng.Shuffle(len(handles), func(i, j int) {
			handles[i], handles[j] = handles[j], handles[i]
		})
		for _, h := range handles {
			require.NoError(t, p.Destroy(h))
		}
		require.NoError(t, validatePoolInvariants(p, 0), "round %d", round)
	}
	t.Logf("Stress test: 10 rounds of 200 create/destroy cycles completed")
}
