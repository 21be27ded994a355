package record

import (
	"bytes"
	"unicode/utf8"
)

// EncodeText converts s into a NUL padded buffer of exactly width bytes.
//
// At most width-1 bytes of s are kept so the buffer is always NUL
// terminated. When the cut falls inside a multi-byte UTF-8 sequence the
// partial rune is dropped. An embedded NUL ends the text early, matching how
// the stored bytes are read back.
func EncodeText(s string, width int) []byte {
	buf := make([]byte, width)
	if width <= 0 {
		return buf
	}

	b := []byte(s)
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}

	if len(b) > width-1 {
		n := width - 1
		for back := 0; n > 0 && back < utf8.UTFMax-1 && !utf8.RuneStart(b[n]); back++ {
			n--
		}
		b = b[:n]
	}

	copy(buf, b)
	return buf
}

// DecodeText returns the bytes of buf up to the first NUL.
func DecodeText(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf)
}

// TruncateText reports the value s would have after a round trip through a
// field of the given width.
func TruncateText(s string, width int) string {
	return DecodeText(EncodeText(s, width))
}
