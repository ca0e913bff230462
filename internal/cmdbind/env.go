package cmdbind

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type FlagError struct {
	Flag *pflag.Flag
	Env  string
	Err  error
}

type ErrInvalidEnvironment struct {
	FlagErrors []FlagError
}

func (e ErrInvalidEnvironment) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid environment variables:\n")
	for _, fe := range e.FlagErrors {
		sb.WriteString(fmt.Sprintf("  %s (--%s): %s\n", fe.Env, fe.Flag.Name, fe.Err))
	}
	return sb.String()
}

type ErrUnboundEnvironment struct {
	Names []string
}

func (e ErrUnboundEnvironment) Error() string {
	var sb strings.Builder
	sb.WriteString("unbound environment variables:\n")
	for _, name := range e.Names {
		sb.WriteString(fmt.Sprintf("  %s\n", name))
	}
	return sb.String()
}

// applyEnv copies env var values into all flags visible to leafCmd that were not set on the
// command line.
func applyEnv(leafCmd *cobra.Command) error {
	var errs ErrInvalidEnvironment
	visitBoundFlags(leafCmd, func(flag *pflag.Flag, env string) {
		if flag.Changed {
			return
		}
		value, ok := os.LookupEnv(env)
		if !ok {
			return
		}
		if err := flag.Value.Set(value); err != nil {
			errs.FlagErrors = append(errs.FlagErrors, FlagError{Flag: flag, Env: env, Err: err})
			return
		}
		flag.Changed = true
	})
	if len(errs.FlagErrors) > 0 {
		return errs
	}
	return nil
}

// checkUnbound fails when the environment holds variables with the root's env prefix that no
// flag in the command tree consumes. This catches typos such as SPEAKIT_MAXWORDS.
func checkUnbound(rootCmd *cobra.Command) error {
	prefix, ok := rootCmd.Annotations[annotationEnv]
	if !ok {
		return nil
	}
	prefix += "_"
	unbound := make(map[string]struct{})
	for _, kv := range os.Environ() {
		key, _, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(key, prefix) {
			unbound[key] = struct{}{}
		}
	}
	var prune func(cmd *cobra.Command)
	prune = func(cmd *cobra.Command) {
		visitEnvFlags(cmd.LocalFlags(), func(_ *pflag.Flag, env string) {
			delete(unbound, env)
		})
		for _, sub := range cmd.Commands() {
			prune(sub)
		}
	}
	prune(rootCmd)
	if len(unbound) > 0 {
		return ErrUnboundEnvironment{Names: slices.Sorted(maps.Keys(unbound))}
	}
	return nil
}

// visitBoundFlags calls fn for every env-bound flag that cmd accepts, including inherited ones.
func visitBoundFlags(cmd *cobra.Command, fn func(flag *pflag.Flag, env string)) {
	visitEnvFlags(cmd.LocalFlags(), fn)
	visitEnvFlags(cmd.InheritedFlags(), fn)
}

func visitEnvFlags(fs *pflag.FlagSet, fn func(flag *pflag.Flag, env string)) {
	fs.VisitAll(func(flag *pflag.Flag) {
		if env := flag.Annotations[annotationEnv]; len(env) > 0 {
			fn(flag, env[0])
		}
	})
}
