package cmdbind

import (
	"github.com/spf13/cobra"
)

// Hook is a cobra RunE function that additionally receives the bound configuration.
type Hook[T any] func(cfg T, cmd *cobra.Command, args []string) error

// Hooks maps to cobra's RunE functions. Setup becomes PersistentPreRunE and therefore also
// runs for subcommands, after flags and env vars were applied.
type Hooks[T any] struct {
	Setup Hook[T]
	Run   Hook[T]
}

func init() {
	// Parent setup hooks must run for subcommands too, e.g. to install the logger.
	cobra.EnableTraverseRunHooks = true
}

func Setup[T any](f Hook[T]) Hooks[T] {
	return Hooks[T]{Setup: f}
}

func Run[T any](f Hook[T]) Hooks[T] {
	return Hooks[T]{Run: f}
}

func SetupAndRun[T any](setup, run Hook[T]) Hooks[T] {
	return Hooks[T]{Setup: setup, Run: run}
}

// RootCommand binds cfg to cmd's flags and to env vars prefixed with the command's name in
// SCREAMING_SNAKE_CASE. The root command additionally gets --env-file, --env-overwrite and
// --env-lax, and checks for unbound env vars before any hook runs.
func RootCommand[T any](hooks Hooks[T], cmd cobra.Command, cfg T) *cobra.Command {
	root := bindCommand(hooks, &cmd, &cfg, screamingSnake(cmd.Name()))

	setup := root.PersistentPreRunE
	loadDotEnv := dotEnvFlags(root)
	lax := root.PersistentFlags().Bool("env-lax", false, "ignore unknown environment variables with this tool's prefix")
	root.PersistentPreRunE = func(leaf *cobra.Command, args []string) error {
		if err := loadDotEnv(); err != nil {
			return err
		}
		if err := applyEnv(leaf); err != nil {
			return err
		}
		if !*lax {
			if err := checkUnbound(root); err != nil {
				return err
			}
		}
		if setup != nil {
			return setup(leaf, args)
		}
		return nil
	}
	return root
}

// SubCommand adds cmd to parent. Env vars are prefixed with the parent's prefix and the
// subcommand's name.
func SubCommand[T any](parent *cobra.Command, hooks Hooks[T], cmd cobra.Command, cfg T) *cobra.Command {
	prefix := ""
	if parentPrefix, ok := parent.Annotations[annotationEnv]; ok {
		prefix = parentPrefix + "_" + screamingSnake(cmd.Name())
	}
	sub := bindCommand(hooks, &cmd, &cfg, prefix)
	parent.AddCommand(sub)
	return sub
}

func bindCommand[T any](hooks Hooks[T], cmd *cobra.Command, cfg *T, envPrefix string) *cobra.Command {
	if cmd.Use == "" {
		panic("use line must be set, and should include all non-global flags")
	}
	cmd.PersistentPreRunE = passCfg(cfg, hooks.Setup)
	cmd.RunE = passCfg(cfg, hooks.Run)
	cmd.TraverseChildren = true
	cmd.DisableAutoGenTag = true
	cmd.DisableFlagsInUseLine = true
	if cmd.Args == nil {
		cmd.Args = cobra.NoArgs
	}

	BindConfig(cmd, cfg, envPrefix)
	cmd.AddCommand(newPrintEnvCmd(cmd))
	return cmd
}

func passCfg[T any](cfg *T, f Hook[T]) func(cmd *cobra.Command, args []string) error {
	if f == nil {
		return nil
	}
	return func(cmd *cobra.Command, args []string) error {
		return f(*cfg, cmd, args)
	}
}
