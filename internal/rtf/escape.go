// Package rtf provides minimal RTF text escaping and body extraction for
// the merge engine. It is not a general RTF parser: it knows just enough
// structure to lift the body out of a complete document and to emit plain
// text safely.
package rtf

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

// EscapeText escapes plain text for inclusion in an RTF document.
// Backslash and braces get a backslash escape, newlines become \line, and
// characters outside 7-bit ASCII are emitted as \uN? unicode escapes.
func EscapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\\' || r == '{' || r == '}':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString("\\line ")
		case r == '\r':
			// dropped; \n carries the line break
		case r < 0x80:
			b.WriteRune(r)
		default:
			// \u takes a signed 16-bit value; the trailing '?' is the
			// fallback character for readers without unicode support.
			// Runes above the BMP are emitted as surrogate pairs.
			for _, u := range utf16.Encode([]rune{r}) {
				b.WriteString("\\u")
				b.WriteString(strconv.Itoa(int(int16(u))))
				b.WriteByte('?')
			}
		}
	}
	return b.String()
}
