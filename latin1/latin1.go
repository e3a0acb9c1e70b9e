// Package latin1 transcodes Latin-1 (ISO-8859-1) input to UTF-8, the only
// non-UTF-8 encoding spec.md §4.1/§6 asks the driver to accept.
package latin1

import (
	"golang.org/x/text/encoding/charmap"
)

// Transcode converts Latin-1 bytes to UTF-8. It is a pure function of its
// input: src is never mutated, and the returned buffer does not alias it.
// The returned error is always nil.
func Transcode(src []byte) ([]byte, error) {
	out := make([]byte, 0, 2*len(src)+1)
	for _, b := range src {
		if b < 0x80 {
			out = append(out, b)
			continue
		}
		r := charmap.ISO8859_1.DecodeByte(b)
		out = appendRune(out, r)
	}
	return out, nil
}

// appendRune is a minimal UTF-8 encoder for the Latin-1 codepoint range
// (U+0000-U+00FF), matching spec.md §4.1's exact two-byte encoding recipe
// for bytes ≥ 0x80.
func appendRune(buf []byte, r rune) []byte {
	if r < 0x80 {
		return append(buf, byte(r))
	}
	return append(buf, byte(0xC0|(r>>6)), byte(0x80|(r&0x3F)))
}
