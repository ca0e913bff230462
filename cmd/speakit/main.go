// speakit splits programming identifiers into words, e.g. for feeding symbol names to a
// text-to-speech engine.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mologie/speakit"
	"github.com/mologie/speakit/cmd/speakit/internal/linescmd"
	"github.com/mologie/speakit/cmd/speakit/internal/logutil"
	"github.com/mologie/speakit/internal/cmdbind"
	"github.com/spf13/cobra"
)

type MainConfig struct {
	speakit.Config `flag:"persistent"`
	Log            logutil.Config `flag:"persistent"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := cmdbind.RootCommand(cmdbind.SetupAndRun(setup, run), cobra.Command{
		Use:   "speakit [--include-digits] [--spell-digits] [--max-words <n>] <symbol>...",
		Short: "Split programming identifiers into words",
		Example: "  speakit module_aTestCase    # module a Test Case\n" +
			"  speakit --spell-digits=false 0_A1B2C3DEF99",
		Args: cobra.MinimumNArgs(1),
	}, MainConfig{
		Config: speakit.DefaultConfig(),
		Log:    logutil.DefaultConfig(),
	})

	linescmd.Create(cmd)
	return cmd
}

func setup(cfg MainConfig, cmd *cobra.Command, args []string) error {
	handler, err := cfg.Log.NewHandler(cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to create log handler: %w", err)
	}
	if cfg.MaxWords < 0 {
		return fmt.Errorf("max words must be >=0, but got %d", cfg.MaxWords)
	}

	log := slog.New(handler)
	log.Debug("splitter configured",
		slog.Bool("include_digits", cfg.IncludeDigits),
		slog.Bool("spell_digits", cfg.SpellDigits),
		slog.Int("max_words", cfg.MaxWords))

	ctx := logutil.WithLogger(cmd.Context(), log)
	ctx = linescmd.WithSplitter(ctx, speakit.New(cfg.Options()...))
	cmd.SetContext(ctx)
	return nil
}

func run(cfg MainConfig, cmd *cobra.Command, args []string) error {
	splitter := linescmd.SplitterFromContext(cmd.Context())
	for _, symbol := range splitter.SplitAll(args) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), symbol); err != nil {
			return err
		}
	}
	return nil
}
