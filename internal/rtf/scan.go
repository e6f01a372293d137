package rtf

import "strings"

// rtfPrefix opens every complete RTF document.
const rtfPrefix = "{\\rtf"

// headerDestinations are group destinations that belong to the document
// header and never carry body content.
var headerDestinations = map[string]bool{
	"fonttbl":      true,
	"colortbl":     true,
	"stylesheet":   true,
	"info":         true,
	"listtable":    true,
	"listoverride": true,
	"generator":    true,
}

// headerControls are root-level control words that belong to the document
// prolog or page setup. The body starts at the first root-level token
// outside this set.
var headerControls = map[string]bool{
	"rtf": true, "ansi": true, "ansicpg": true, "mac": true, "pc": true,
	"pca": true, "deff": true, "adeff": true, "stshfdbch": true,
	"stshfloch": true, "stshfhich": true, "stshfbi": true,
	"deflang": true, "deflangfe": true, "adeflang": true, "uc": true,
	"paperw": true, "paperh": true, "margl": true, "margr": true,
	"margt": true, "margb": true, "gutter": true, "viewkind": true,
	"viewscale": true, "fet": true, "formshade": true, "widowctrl": true,
	"ftnbj": true, "aenddoc": true, "noxlattoyen": true,
}

// ExtractBody returns the body markup of src. Complete RTF documents have
// their prolog control words and header-only groups stripped; anything
// else is treated as plain text and escaped.
func ExtractBody(src string) string {
	if !strings.HasPrefix(src, rtfPrefix) {
		return EscapeText(src)
	}
	s := scanner{src: src, pos: 1} // past the root open brace
	return s.body()
}

// scanner walks the root group of a complete RTF document.
type scanner struct {
	src string
	pos int
}

// body skips header tokens at root level and captures from the first body
// token up to the brace closing the root group.
func (s *scanner) body() string {
	for s.pos < len(s.src) {
		start := s.pos
		switch c := s.src[s.pos]; {
		case c == '{':
			if s.skipHeaderGroup() {
				continue
			}
			return s.capture(start)
		case c == '\\':
			word := s.controlWord()
			if headerControls[word] {
				continue
			}
			return s.capture(start)
		case c == '}':
			return "" // root group closed with no body
		case c == ' ' || c == '\n' || c == '\r' || c == '\t':
			s.pos++
		default:
			return s.capture(start)
		}
	}
	return ""
}

// capture returns src from start up to the last close brace, which in a
// well-formed document balances the root group. Malformed input is the
// caller's problem (garbage in, garbage out).
func (s *scanner) capture(start int) string {
	end := strings.LastIndexByte(s.src, '}')
	if end < start {
		end = len(s.src)
	}
	return strings.TrimRight(s.src[start:end], " \r\n\t")
}

// skipHeaderGroup consumes the group at the current position when it is a
// header-only destination ("\*"-prefixed or a known destination word) and
// reports whether it did. Other groups are left unconsumed: they start
// the body.
func (s *scanner) skipHeaderGroup() bool {
	inner := s.pos + 1
	if inner >= len(s.src) || s.src[inner] != '\\' {
		return false
	}
	if inner+1 < len(s.src) && s.src[inner+1] == '*' {
		s.skipGroup()
		return true
	}
	probe := scanner{src: s.src, pos: inner}
	if headerDestinations[probe.controlWord()] {
		s.skipGroup()
		return true
	}
	return false
}

// skipGroup consumes a balanced brace group starting at the current
// position, honoring backslash escapes.
func (s *scanner) skipGroup() {
	depth := 0
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
			continue
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				s.pos++
				return
			}
		}
		s.pos++
	}
}

// controlWord consumes a control word at the current position (which must
// be a backslash) including its numeric parameter and delimiting space,
// and returns the alphabetic word.
func (s *scanner) controlWord() string {
	s.pos++ // backslash
	start := s.pos
	for s.pos < len(s.src) && isLetter(s.src[s.pos]) {
		s.pos++
	}
	word := s.src[start:s.pos]
	if s.pos < len(s.src) && s.src[s.pos] == '-' {
		s.pos++
	}
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.pos++
	}
	if s.pos < len(s.src) && s.src[s.pos] == ' ' {
		s.pos++
	}
	return word
}

func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
