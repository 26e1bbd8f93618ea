package ais

import (
	"strings"

	"github.com/haugland/nmeadecode/bitvec"
)

// decodeText reads a fixed-width 6-bit-ASCII-armored text field (AIS's
// "Dec-8" character set: each sextet maps to a character via
// v < 32 ? v+64 : v) and trims trailing '@' padding and trailing
// spaces. Text fields are padded with '@' (value 0) up to their
// declared width, and interior padding is never trimmed.
func decodeText(bv bitvec.BitVector, offset, width int) string {
	var b strings.Builder
	for pos := offset; pos+6 <= offset+width; pos += 6 {
		v := bv.PickUnsigned(pos, 6)
		var c byte
		if v < 32 {
			c = byte(v) + 64
		} else {
			c = byte(v)
		}
		b.WriteByte(c)
	}
	s := b.String()
	s = strings.TrimRight(s, "@")
	s = strings.TrimRight(s, " ")
	return s
}
