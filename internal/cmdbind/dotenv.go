package cmdbind

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// replaced by tests
var (
	dotEnvLoad     = godotenv.Load
	dotEnvOverload = godotenv.Overload
)

// dotEnvFlags registers the dotenv flags on rootCmd and returns a loader for the files given.
func dotEnvFlags(rootCmd *cobra.Command) func() error {
	fs := rootCmd.PersistentFlags()
	files := fs.StringArray("env-file", nil, "load dotenv file (repeat for multiple files)")
	overwrite := fs.Bool("env-overwrite", false, "let dotenv files override the existing environment")
	return func() error {
		if len(*files) == 0 {
			return nil
		}
		load := dotEnvLoad
		if *overwrite {
			load = dotEnvOverload
		}
		if err := load(*files...); err != nil {
			return fmt.Errorf("load dotenv: %w", err)
		}
		return nil
	}
}
