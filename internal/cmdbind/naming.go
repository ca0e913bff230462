package cmdbind

import (
	"strings"

	"github.com/mologie/speakit"
)

var nameSplitter = speakit.New(speakit.WithLiteralDigits())

// kebab turns a Go identifier into a flag name, e.g. MaxWords to max-words.
func kebab(in string) string {
	return strings.ToLower(strings.ReplaceAll(nameSplitter.Split(in), " ", "-"))
}

// screamingSnake turns an identifier or flag name into an env var name, e.g. max-words to
// MAX_WORDS.
func screamingSnake(in string) string {
	return strings.ToUpper(strings.ReplaceAll(nameSplitter.Split(in), " ", "_"))
}
