package cold

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalText(t *testing.T) {
	for _, in := range []string{"", "inline", strings.Repeat("heap content ", 6)} {
		s := New(in)
		out, err := s.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, in, string(out))

		// The marshaled copy must survive the instance.
		s.Release()
		assert.Equal(t, in, string(out), "MarshalText must return an owned copy")
	}
}

func TestUnmarshalText(t *testing.T) {
	var s String
	require.NoError(t, s.UnmarshalText([]byte("fresh")))
	assert.Equal(t, "fresh", s.String())

	// Overwriting a heap string releases the old block first.
	long := strings.Repeat("old", 20)
	require.NoError(t, s.UnmarshalText([]byte(long)))
	require.NoError(t, s.UnmarshalText([]byte("new")))
	assert.Equal(t, "new", s.String())

	err := s.UnmarshalText([]byte{0xFF, 0xFE, 0xFD})
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Equal(t, "new", s.String(), "failed unmarshal leaves the value intact")
}

func TestFromUTF16LE(t *testing.T) {
	// "qwerty" as UTF-16LE code units.
	in := []byte{'q', 0, 'w', 0, 'e', 0, 'r', 0, 't', 0, 'y', 0}
	s, err := FromUTF16LE(in)
	require.NoError(t, err)
	assert.Equal(t, "qwerty", s.String())
	assert.True(t, s.IsInline())

	// U+1F980 (crab) is a surrogate pair: D83E DD80.
	crab := []byte{0x3E, 0xD8, 0x80, 0xDD}
	s2, err := FromUTF16LE(crab)
	require.NoError(t, err)
	assert.Equal(t, "🦀", s2.String())

	s3, err := FromUTF16LE(nil)
	require.NoError(t, err)
	assert.True(t, s3.IsEmpty())
}

// TestFromUTF16LEOddLength: a trailing odd byte is not an error; the decoder
// emits U+FFFD for the incomplete code unit.
func TestFromUTF16LEOddLength(t *testing.T) {
	s, err := FromUTF16LE([]byte{'q', 0, 'w'})
	require.NoError(t, err)
	assert.Equal(t, "q�", s.String())
}

func TestFromUTF16LEHeap(t *testing.T) {
	// 32 copies of U+701C, one 16-bit unit each, decoding to 96 UTF-8 bytes.
	var in []byte
	for i := 0; i < 32; i++ {
		in = append(in, 0x1C, 0x70)
	}
	s, err := FromUTF16LE(in)
	require.NoError(t, err)
	defer s.Release()
	assert.False(t, s.IsInline())
	assert.Equal(t, strings.Repeat("瀜", 32), s.String())
}
