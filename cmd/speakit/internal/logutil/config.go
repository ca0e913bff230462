package logutil

import (
	"io"
	"log/slog"
)

type Config struct {
	Level  Level  `usage:"TRACE, DEBUG, INFO, WARN, ERROR or FATAL"`
	Format Format `usage:"TEXT or JSON"`
}

func DefaultConfig() Config {
	return Config{
		Level:  Level(slog.LevelInfo),
		Format: FormatText,
	}
}

func (c Config) NewHandler(w io.Writer) (slog.Handler, error) {
	return NewHandler(w, c.Format, c.Level)
}
