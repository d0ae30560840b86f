package wire

import (
	"fmt"
	"strings"
)

// EscapeBytes renders data the way both pretty-printers quote a BINARY
// payload: printable ASCII passes through unchanged, except that '"' and
// '\'' are also escaped to avoid ambiguity with the surrounding quotes;
// everything else becomes a lowercase \xHH.
func EscapeBytes(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))

	for _, c := range data {
		if c > 31 && c < 127 && c != '"' && c != '\'' {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "\\x%02x", c)
	}

	return b.String()
}
