package cold

import (
	"bytes"
	"hash/maphash"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	long := strings.Repeat("equal content ", 8)

	a, b := New("qwerty"), New("qwerty")
	assert.True(t, a.Equal(&b), "equal inline-short content")

	f1, f2 := New(strings.Repeat("w", Width)), New(strings.Repeat("w", Width))
	assert.True(t, f1.Equal(&f2), "equal inline-full content")

	h1, h2 := New(long), New(long)
	defer h1.Release()
	defer h2.Release()
	assert.True(t, h1.Equal(&h2), "equal heap content from independent blocks")

	c := New("qwertz")
	assert.False(t, a.Equal(&c))
	assert.False(t, a.Equal(&h1), "inline and heap lengths can never match")

	h3 := New(long + "tail")
	defer h3.Release()
	assert.False(t, h1.Equal(&h3))
}

func TestEqualString(t *testing.T) {
	s := New("hello")
	assert.True(t, s.EqualString("hello"))
	assert.False(t, s.EqualString("hellO"))
	assert.False(t, s.EqualString("hello "))

	h := New(strings.Repeat("h", 50))
	defer h.Release()
	assert.True(t, h.EqualString(strings.Repeat("h", 50)))
}

// TestCompare checks byte-lexicographic ordering matches bytes.Compare for
// every mode pairing, including prefixes that straddle the inline/heap
// split.
func TestCompare(t *testing.T) {
	inputs := []string{
		"", "a", "ab", "b",
		strings.Repeat("a", Width-1),
		strings.Repeat("a", Width),
		strings.Repeat("a", Width+1),
		strings.Repeat("a", 100),
		strings.Repeat("b", 100),
		"zz", "z" + strings.Repeat("a", 99),
	}
	for _, x := range inputs {
		for _, y := range inputs {
			sx, sy := New(x), New(y)
			want := bytes.Compare([]byte(x), []byte(y))
			assert.Equal(t, want, sx.Compare(&sy), "Compare(%q, %q)", x, y)
			assert.Equal(t, want == 0, sx.Equal(&sy), "Equal(%q, %q)", x, y)
			sx.Release()
			sy.Release()
		}
	}
}

func TestSortOrder(t *testing.T) {
	in := []string{"pear", "apple", strings.Repeat("apple", 10), "fig", "banana", ""}
	strs := make([]String, len(in))
	for i, x := range in {
		strs[i] = New(x)
	}
	defer func() {
		for i := range strs {
			strs[i].Release()
		}
	}()

	sort.Slice(strs, func(i, j int) bool { return strs[i].Compare(&strs[j]) < 0 })
	sort.Strings(in)
	for i := range in {
		assert.Equal(t, in[i], strs[i].String(), "rank %d", i)
	}
}

// TestHashConsistency: equal content hashes identically no matter which
// blocks back it, and independent content collides only by chance.
func TestHashConsistency(t *testing.T) {
	seed := maphash.MakeSeed()
	for _, in := range []string{"", "short", strings.Repeat("long", 64)} {
		a, b := New(in), New(in)
		c := a.Clone()

		ha, hb, hc := a.Hash(seed), b.Hash(seed), c.Hash(seed)
		assert.Equal(t, ha, hb, "independent constructions of %q", in)
		assert.Equal(t, ha, hc, "clone of %q", in)
		require.Equal(t, maphash.String(seed, in), ha,
			"hash must cover exactly the decoded content of %q", in)

		a.Release()
		b.Release()
		c.Release()
	}
}
