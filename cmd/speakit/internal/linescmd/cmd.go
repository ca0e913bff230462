package linescmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mologie/speakit"
	"github.com/mologie/speakit/cmd/speakit/internal/logutil"
	"github.com/mologie/speakit/internal/cmdbind"
	"github.com/spf13/cobra"
)

const maxLineSize = 1 << 20

type Config struct {
	Jobs int `usage:"concurrent workers, 0 for one per CPU"`
}

type splitterContextKey struct{}

// WithSplitter makes the splitter configured by the root command available to subcommands.
func WithSplitter(ctx context.Context, s *speakit.Splitter) context.Context {
	return context.WithValue(ctx, splitterContextKey{}, s)
}

func SplitterFromContext(ctx context.Context) *speakit.Splitter {
	if s, ok := ctx.Value(splitterContextKey{}).(*speakit.Splitter); ok {
		return s
	}
	return speakit.New()
}

func Create(parent *cobra.Command) *cobra.Command {
	return cmdbind.SubCommand(parent, cmdbind.Run(run), cobra.Command{
		Use:   "lines [--jobs <num>] [file...]",
		Short: "Split every line of the given files, or of stdin",
		Long: "Split every line of the given files into words, one output line per input line. " +
			"Reads stdin when no file or \"-\" is given.",
		Args: cobra.ArbitraryArgs,
	}, Config{})
}

func run(cfg Config, cmd *cobra.Command, args []string) error {
	if cfg.Jobs < 0 {
		return fmt.Errorf("jobs must be >=0, but got %d", cfg.Jobs)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}

	log := logutil.FromContext(cmd.Context())
	startTime := time.Now()

	var symbols []string
	for _, name := range args {
		lines, err := readLines(cmd.InOrStdin(), name)
		if err != nil {
			return err
		}
		log.Debug("read input", slog.String("file", name), slog.Int("lines", len(lines)))
		symbols = append(symbols, lines...)
	}

	words, err := SplitterFromContext(cmd.Context()).SplitAllConcurrent(cmd.Context(), symbols, cfg.Jobs)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, line := range words {
		_, _ = w.WriteString(line)
		_ = w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Info("lines split",
		slog.Int("lines", len(symbols)),
		slog.Duration("duration", time.Since(startTime)))
	return nil
}

func readLines(stdin io.Reader, name string) ([]string, error) {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return lines, nil
}
