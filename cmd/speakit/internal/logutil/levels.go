package logutil

import (
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
)

var _ pflag.Value = (*Level)(nil)

// Level is a slog.Level that also accepts TRACE and FATAL on the command line.
type Level slog.Level

const (
	LevelTrace = slog.Level(-8)
	LevelFatal = slog.Level(12)
)

var levelNames = map[slog.Level]string{
	LevelTrace: "TRACE",
	LevelFatal: "FATAL",
}

func (l *Level) Set(s string) error {
	name := strings.ToUpper(s)
	for level, levelName := range levelNames {
		if levelName == name {
			*l = Level(level)
			return nil
		}
	}
	return (*slog.Level)(l).UnmarshalText([]byte(name))
}

func (l *Level) String() string {
	if name, ok := levelNames[slog.Level(*l)]; ok {
		return name
	}
	return slog.Level(*l).String()
}

func (l *Level) Type() string {
	return "level"
}

func levelAttrReplacer(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if level, ok := a.Value.Any().(slog.Level); ok {
		if name, ok := levelNames[level]; ok {
			a.Value = slog.StringValue(name)
		}
	}
	return a
}
