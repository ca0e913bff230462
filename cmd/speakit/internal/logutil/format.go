package logutil

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
)

var _ pflag.Value = (*Format)(nil)

type Format string

const (
	FormatText Format = "TEXT"
	FormatJSON Format = "JSON"
)

func (f *Format) Set(s string) error {
	switch format := Format(strings.ToUpper(s)); format {
	case FormatText, FormatJSON:
		*f = format
		return nil
	}
	return fmt.Errorf("invalid log format %q", s)
}

func (f *Format) String() string {
	return string(*f)
}

func (f *Format) Type() string {
	return "format"
}

func NewHandler(w io.Writer, format Format, level Level) (slog.Handler, error) {
	opt := &slog.HandlerOptions{
		Level:       slog.Level(level),
		ReplaceAttr: levelAttrReplacer,
	}
	switch format {
	case FormatText:
		return slog.NewTextHandler(w, opt), nil
	case FormatJSON:
		return slog.NewJSONHandler(w, opt), nil
	}
	return nil, fmt.Errorf("unsupported log format %q", format)
}
