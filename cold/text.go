package cold

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// utf16le decodes UTF-16LE byte streams to UTF-8. Lone surrogates and a
// trailing odd byte decode to U+FFFD, matching the decoder's standard
// replacement behavior.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// FromUTF16LE transcodes a UTF-16 little-endian byte sequence and packs the
// resulting UTF-8 content. Useful for string data lifted out of Windows
// binary formats, which store text as UTF-16LE.
func FromUTF16LE(b []byte) (String, error) {
	u, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return String{}, fmt.Errorf("cold: decode UTF-16LE: %w", err)
	}
	return pack(defaultArena, u)
}

// MarshalText implements encoding.TextMarshaler. The returned slice is an
// independent copy owned by the caller.
func (s *String) MarshalText() ([]byte, error) {
	return bytes.Clone(s.Bytes()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Any previous heap block
// held by *s is released before the new content is packed.
func (s *String) UnmarshalText(b []byte) error {
	c, err := FromBytes(b)
	if err != nil {
		return err
	}
	s.Release()
	*s = c
	return nil
}
