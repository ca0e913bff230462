package cmdbind

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	// optPersistent registers the flag with the persistent flag set, so that subcommands
	// accept it too.
	optPersistent = "persistent"
)

const (
	// annotationEnv holds the env var name on a flag, or the env prefix on a command.
	annotationEnv = "cmdbind_env"

	// annotationUsage keeps the plain usage text before "(env ...)" is appended.
	annotationUsage = "cmdbind_usage"
)

var validEnvName = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// BindConfig registers a flag for every field of the struct pointed to by cfg. Flags write
// straight into cfg. When envPrefix is non-empty, every flag is also bound to the env var
// envPrefix + "_" + SCREAMING_SNAKE(field).
//
// Struct tags:
//   - flag: "persistent" to register with the persistent flag set.
//   - param: "name" or "name,n" for a short option. Defaults to kebab-case of the field name.
//   - env: env var name, or "-" for none.
//   - usage: flag usage string.
//
// Nested structs are flattened, with names prefixed by the parent field's name. Embedded
// structs are flattened without a prefix.
func BindConfig(cmd *cobra.Command, cfg any, envPrefix string) {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		panic("cfg must be a struct pointer")
	}
	if envPrefix != "" {
		if !validEnvName.MatchString(envPrefix) {
			panic(fmt.Sprintf("env prefix %q must be SCREAMING_SNAKE_CASE", envPrefix))
		}
		if cmd.Annotations == nil {
			cmd.Annotations = map[string]string{}
		}
		cmd.Annotations[annotationEnv] = envPrefix
		envPrefix += "_"
	}
	bindStruct(cmd, v.Elem(), "", envPrefix, false)
}

func bindStruct(cmd *cobra.Command, s reflect.Value, paramPrefix, envPrefix string, persistent bool) {
	t := s.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tags := parseTags(paramPrefix, envPrefix, field)
		inherit := persistent || tags.persistent
		value := s.Field(i)

		fs := cmd.Flags()
		if inherit {
			fs = cmd.PersistentFlags()
		}

		switch p := value.Addr().Interface().(type) {
		case *bool:
			fs.BoolVarP(p, tags.name, tags.abbrev, *p, tags.usage)
		case *int:
			fs.IntVarP(p, tags.name, tags.abbrev, *p, tags.usage)
		case *uint:
			fs.UintVarP(p, tags.name, tags.abbrev, *p, tags.usage)
		case *string:
			fs.StringVarP(p, tags.name, tags.abbrev, *p, tags.usage)
		case *[]string:
			fs.StringSliceVarP(p, tags.name, tags.abbrev, *p, tags.usage)
		case *time.Duration:
			fs.DurationVarP(p, tags.name, tags.abbrev, *p, tags.usage)
		case pflag.Value:
			fs.VarP(p, tags.name, tags.abbrev, tags.usage)
		default:
			if value.Kind() == reflect.Struct && field.Anonymous {
				bindStruct(cmd, value, paramPrefix, envPrefix, inherit)
				continue
			} else if value.Kind() == reflect.Struct {
				var nextEnv string
				if tags.env != "-" {
					nextEnv = tags.env + "_"
				}
				bindStruct(cmd, value, tags.name+"-", nextEnv, inherit)
				continue
			}
			panic(fmt.Sprintf("unsupported field type %T for %q", p, tags.name))
		}

		flag := fs.Lookup(tags.name)
		if flag == nil {
			panic(fmt.Sprintf("flag %q not found after it was added", tags.name))
		}
		flag.Annotations = map[string][]string{annotationUsage: {flag.Usage}}
		if tags.env != "-" {
			flag.Annotations[annotationEnv] = []string{tags.env}
			spaceAppendf(&flag.Usage, "(env %s)", tags.env)
		}
	}
}

type fieldTags struct {
	persistent bool
	name       string
	abbrev     string
	env        string
	usage      string
}

func parseTags(paramPrefix, envPrefix string, field reflect.StructField) (tags fieldTags) {
	tags.persistent = slices.Contains(strings.Split(field.Tag.Get("flag"), ","), optPersistent)
	tags.name, tags.abbrev, _ = strings.Cut(field.Tag.Get("param"), ",")
	tags.env = field.Tag.Get("env")
	tags.usage = field.Tag.Get("usage")

	if tags.name == "" {
		tags.name = kebab(field.Name)
	}
	tags.name = paramPrefix + tags.name
	if len(tags.abbrev) > 1 {
		panic(fmt.Sprintf("abbreviation %q for %q must be a single character", tags.abbrev, tags.name))
	}

	switch {
	case tags.env == "" && envPrefix == "":
		tags.env = "-"
	case tags.env == "":
		tags.env = envPrefix + screamingSnake(field.Name)
	case tags.env != "-" && !validEnvName.MatchString(tags.env):
		panic(fmt.Sprintf("env tag %q for %q must be SCREAMING_SNAKE_CASE", tags.env, tags.name))
	}
	return
}

func spaceAppendf(s *string, format string, a ...any) {
	if len(*s) > 0 {
		*s += " "
	}
	*s += fmt.Sprintf(format, a...)
}
