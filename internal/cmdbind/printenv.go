package cmdbind

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var omitQuotes = regexp.MustCompile(`^[a-zA-Z0-9_.,:/-]*$`)

func newPrintEnvCmd(outerCmd *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "printenv",
		Short: "Print all environment variable values or defaults for this command",
		Args:  cobra.NoArgs,
	}
	cmd.DisableAutoGenTag = true
	cmd.DisableFlagsInUseLine = true

	//goland:noinspection GoUnhandledErrorResult for fmt.Fprintf
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "# %s\n", outerCmd.CommandPath())

		printFlag := func(flag *pflag.Flag) {
			env := flag.Annotations[annotationEnv]
			if flag.Hidden || len(env) == 0 {
				return
			}
			fmt.Fprintf(w, "\n# %s", flag.Name)
			if usage := flag.Annotations[annotationUsage]; len(usage) > 0 && usage[0] != "" {
				fmt.Fprintf(w, ": %s", usage[0])
			}
			fmt.Fprintf(w, " (type: %s)\n", flag.Value.Type())

			// env was already applied to inherited flags, but not to the outer command's own
			if value, ok := os.LookupEnv(env[0]); ok && !flag.Changed {
				fmt.Fprintf(w, "%s=%s\n", env[0], shellQuote(value))
			} else if flag.Changed {
				fmt.Fprintf(w, "%s=%s\n", env[0], shellQuote(flag.Value.String()))
			} else {
				fmt.Fprintf(w, "# %s=%s\n", env[0], shellQuote(flag.DefValue))
			}
		}
		outerCmd.LocalFlags().VisitAll(printFlag)
		outerCmd.InheritedFlags().VisitAll(printFlag)
		return nil
	}

	return cmd
}

// shellQuote is cosmetic only, the output is meant for dotenv files.
func shellQuote(s string) string {
	if omitQuotes.MatchString(s) {
		return s
	}
	return strconv.Quote(s)
}
