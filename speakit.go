// Package speakit turns programming identifiers into space-separated words, for feeding symbol
// names to text-to-speech engines or search indexes.
//
// Word boundaries are placed at separators (anything that is not an ASCII letter or digit),
// before every uppercase letter, and at transitions between letters and digits:
//
//	speakit.Split("module_aTestCase")   // "module a Test Case"
//	speakit.Split("0_A1B2C3DEF99")      // "zero A one B two C three D E F nine nine"
//	speakit.Split("0_A1B2C3DEF99", speakit.WithLiteralDigits()) // "0 A 1 B 2 C 3 D E F 99"
//
// A Splitter is immutable and safe for concurrent use.
package speakit

import "fmt"

// Config is the plain-struct form of the splitter options, convenient for binding to flags.
type Config struct {
	IncludeDigits bool `usage:"emit digits at all"`
	SpellDigits   bool `usage:"read digits as words (seven) instead of keeping them literal (7)"`
	MaxWords      int  `usage:"stop after this many words, 0 for no limit"`
}

// DefaultConfig returns the configuration used by New when no options are given.
func DefaultConfig() Config {
	return Config{
		IncludeDigits: true,
		SpellDigits:   true,
	}
}

// Options converts c into the equivalent list of options for New.
func (c Config) Options() []Option {
	opts := []Option{WithMaxWords(c.MaxWords)}
	if !c.IncludeDigits {
		opts = append(opts, WithoutDigits())
	} else if c.SpellDigits {
		opts = append(opts, WithSpelledDigits())
	} else {
		opts = append(opts, WithLiteralDigits())
	}
	return opts
}

type Option func(*Splitter)

// WithoutDigits drops digits from the output. A dropped digit still separates the letters
// around it, so "a9b" becomes "a b".
func WithoutDigits() Option {
	return func(s *Splitter) {
		s.digits = droppedDigits{}
	}
}

// WithSpelledDigits reads every digit as its own English word. This is the default.
func WithSpelledDigits() Option {
	return func(s *Splitter) {
		s.digits = spelledDigits{}
	}
}

// WithLiteralDigits keeps digits as they are, with runs of digits forming a single word.
func WithLiteralDigits() Option {
	return func(s *Splitter) {
		s.digits = literalDigits{}
	}
}

// WithMaxWords limits the output to n words. Zero means unlimited.
func WithMaxWords(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("max words must not be negative, got %d", n))
	}
	return func(s *Splitter) {
		s.maxWords = n
	}
}

// Splitter splits symbols according to a fixed set of options.
type Splitter struct {
	digits   digitRenderer
	maxWords int
}

func New(opts ...Option) *Splitter {
	s := &Splitter{digits: spelledDigits{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config reports the options s was created with.
func (s *Splitter) Config() Config {
	cfg := Config{MaxWords: s.maxWords}
	switch s.digits.(type) {
	case spelledDigits:
		cfg.IncludeDigits, cfg.SpellDigits = true, true
	case literalDigits:
		cfg.IncludeDigits = true
	}
	return cfg
}

// Split splits a single symbol using a Splitter built from opts.
func Split(symbol string, opts ...Option) string {
	return New(opts...).Split(symbol)
}

// SplitAll splits each symbol using a Splitter built from opts.
func SplitAll(symbols []string, opts ...Option) []string {
	return New(opts...).SplitAll(symbols)
}
