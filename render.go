package latlngfmt

import (
	"strconv"
	"strings"
)

// render fills every placeholder of t in a single pass, so digits written for
// one field are never scanned for tokens again.
func (t template) render(axis Axis, p Parts) string {
	b := &strings.Builder{}
	for _, pc := range t {
		switch pc.kind {
		case pieceText:
			b.WriteString(pc.text)
		case pieceHemisphere:
			b.WriteByte(axis.Hemisphere(p.Sign))
		case pieceField:
			writeField(b, pc.tag, p.Value(pc.tag))
		}
	}
	return b.String()
}

// writeField writes v zero-padded on the left to the tag width. Decimal
// fields hold a count of their smallest unit, so 5 minute-thousandths is
// written "005" and reads back as .005.
func writeField(b *strings.Builder, t Tag, v int) {
	s := strconv.Itoa(v)
	for i := len(s); i < t.Width(); i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}
