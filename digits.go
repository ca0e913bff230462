package speakit

var spokenDigits = [10]string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// SpokenDigit returns the English word for an ASCII digit.
func SpokenDigit(r rune) (string, bool) {
	if !isDigit(r) {
		return "", false
	}
	return spokenDigits[r-'0'], true
}

// digitRenderer decides how digits show up in the output.
type digitRenderer interface {
	// opensWord reports whether the digit starts a new word. prevDigit is true when the
	// previously scanned character was a digit as well.
	opensWord(prevDigit bool) bool
	// render returns the text for the digit, or "" when digits are not emitted.
	render(r rune) string
}

type spelledDigits struct{}

func (spelledDigits) opensWord(bool) bool {
	return true
}

func (spelledDigits) render(r rune) string {
	return spokenDigits[r-'0']
}

type literalDigits struct{}

func (literalDigits) opensWord(prevDigit bool) bool {
	return !prevDigit
}

func (literalDigits) render(r rune) string {
	return string(r)
}

type droppedDigits struct{}

func (droppedDigits) opensWord(bool) bool {
	return false
}

func (droppedDigits) render(rune) string {
	return ""
}
