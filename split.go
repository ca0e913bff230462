package speakit

import "strings"

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isUpper(r rune) bool {
	return 'A' <= r && r <= 'Z'
}

func isLetter(r rune) bool {
	return isUpper(r) || 'a' <= r && r <= 'z'
}

// Split inserts a space at every word boundary of symbol and drops separator characters.
// Only ASCII letters and digits are kept; everything else separates words.
func (s *Splitter) Split(symbol string) string {
	var sb strings.Builder
	sb.Grow(len(symbol) * 2)

	words := 1
	pending := false   // a boundary was seen since the last emitted character
	prevDigit := false // the last scanned character was a digit, emitted or not

	// flush writes a pending space before the next emitted character. It reports false when
	// that character would start a word past the limit.
	flush := func() bool {
		if pending && sb.Len() > 0 {
			if words == s.maxWords {
				return false
			}
			sb.WriteByte(' ')
			words++
		}
		pending = false
		return true
	}

	for _, r := range symbol {
		switch {
		case isDigit(r):
			if text := s.digits.render(r); text != "" {
				if s.digits.opensWord(prevDigit) {
					pending = true
				}
				if !flush() {
					return sb.String()
				}
				sb.WriteString(text)
			}
			prevDigit = true
		case isLetter(r):
			if prevDigit || isUpper(r) {
				pending = true
			}
			if !flush() {
				return sb.String()
			}
			sb.WriteRune(r)
			prevDigit = false
		default:
			pending = true
			prevDigit = false
		}
	}
	return sb.String()
}
