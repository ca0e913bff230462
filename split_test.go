package speakit

import (
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"a", "a"},
		{"a_test", "a test"},
		{"aTest", "a Test"},
		{"A", "A"},
		{"ATestCase", "A Test Case"},
		{"ABCDEF", "A B C D E F"},
		{"A.word_C", "A word C"},
		{"module_aTestCase", "module a Test Case"},
		{"_ABCDEF", "A B C D E F"},
		{"__init__", "init"},
		{"___", ""},
		{"a  -  b", "a b"},
		{"999", "nine nine nine"},
		{"99module_aTestCase", "nine nine module a Test Case"},
		{"0_A1B2C3DEF99", "zero A one B two C three D E F nine nine"},
		{"_9a", "nine a"},
		{"_a9", "a nine"},
		{"9aa99", "nine aa nine nine"},
		{"café_au_lait", "caf au lait"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Split(tt.in); got != tt.want {
				t.Errorf("Split(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplit_LiteralDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"aTest", "a Test"},
		{"ABCDEF", "A B C D E F"},
		{"__init__", "init"},
		{"0_A1B2C3DEF99", "0 A 1 B 2 C 3 D E F 99"},
		{"99module_aTestCase", "99 module a Test Case"},
		{"a9b", "a 9 b"},
		{"9_9", "9 9"},
		{"v1024", "v 1024"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Split(tt.in, WithLiteralDigits()); got != tt.want {
				t.Errorf("Split(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplit_WithoutDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"999", ""},
		{"99module_aTestCase", "module a Test Case"},
		{"0_A1B2C3DEF99", "A B C D E F"},
		{"_9a", "a"},
		{"_a9", "a"},
		{"9aa99", "aa"},
		{"a9b", "a b"},
		{"a9B", "a B"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Split(tt.in, WithoutDigits()); got != tt.want {
				t.Errorf("Split(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplit_MaxWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []Option
		want string
	}{
		{"spelled", "99module_aTestCase", nil, "nine nine module"},
		{"literal", "99module_aTestCase", []Option{WithLiteralDigits()}, "99 module a"},
		{"dropped", "99module_aTestCase", []Option{WithoutDigits()}, "module a Test"},
		{"dropped letters", "0_A1B2C3DEF99", []Option{WithoutDigits()}, "A B C"},
		{"spelled letters", "0_A1B2C3DEF99", nil, "zero A one"},
		{"trailing separator", "ab_", nil, "ab"},
		{"exact", "aTest", nil, "a Test"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{WithMaxWords(3)}, tt.opts...)
			if got := Split(tt.in, opts...); got != tt.want {
				t.Errorf("Split(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	if got := Split("aTestCase", WithMaxWords(1)); got != "a" {
		t.Errorf("Split(%q) with one word = %q, want %q", "aTestCase", got, "a")
	}
}

func TestWithMaxWords_Negative(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()
	WithMaxWords(-1)
}

func TestConfig_Options(t *testing.T) {
	tests := []Config{
		DefaultConfig(),
		{IncludeDigits: true},
		{IncludeDigits: true, SpellDigits: true, MaxWords: 2},
		{MaxWords: 7},
	}
	for _, cfg := range tests {
		got := New(cfg.Options()...).Config()
		if got != cfg {
			t.Errorf("New(%+v.Options()).Config() = %+v", cfg, got)
		}
	}

	if got := New().Config(); got != DefaultConfig() {
		t.Errorf("New().Config() = %+v, want %+v", got, DefaultConfig())
	}
}

func TestSpokenDigit(t *testing.T) {
	if word, ok := SpokenDigit('7'); !ok || word != "seven" {
		t.Errorf("SpokenDigit('7') = %q, %v", word, ok)
	}
	if _, ok := SpokenDigit('x'); ok {
		t.Error("SpokenDigit('x') should not be a digit")
	}
}

var fuzzOptions = map[string][]Option{
	"spelled": nil,
	"literal": {WithLiteralDigits()},
	"dropped": {WithoutDigits()},
}

func FuzzSplit(f *testing.F) {
	for _, seed := range []string{"aTest", "ABCDEF", "__init__", "0_A1B2C3DEF99", "99module_aTestCase", "_9a", " x "} {
		f.Add(seed, uint8(0))
		f.Add(seed, uint8(3))
	}
	f.Fuzz(func(t *testing.T, in string, maxWords uint8) {
		for name, opts := range fuzzOptions {
			limit := int(maxWords % 8)
			got := Split(in, append([]Option{WithMaxWords(limit)}, opts...)...)

			if strings.Contains(got, "  ") || strings.HasPrefix(got, " ") || strings.HasSuffix(got, " ") {
				t.Fatalf("%s: Split(%q) = %q has stray spaces", name, in, got)
			}
			words := strings.Fields(got)
			if limit > 0 && len(words) > limit {
				t.Fatalf("%s: Split(%q) = %q exceeds %d words", name, in, got, limit)
			}
			if strings.Join(words, " ") != got {
				t.Fatalf("%s: Split(%q) = %q does not rejoin", name, in, got)
			}
			if name == "dropped" {
				if strings.ContainsAny(got, "0123456789") {
					t.Fatalf("%s: Split(%q) = %q contains digits", name, in, got)
				}
			}
			if limit == 0 {
				if again := Split(got, opts...); again != got {
					t.Fatalf("%s: Split(%q) = %q, but splitting again gives %q", name, in, got, again)
				}
			}
		}
	})
}
