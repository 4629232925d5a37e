// Package flagx lets several packages read their own flags from os.Args
// without tripping over each other: config takes -a/-d/..., the JSON
// loader takes -c/-config, main takes -e/-env.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// FilterArgs keeps only the allowed flags of args, in order, together
// with their values. A value is either joined ("-c=conf.json") or the
// next argument, unless that argument starts with "-".
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]bool, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = true
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, joined := strings.Cut(arg, "="); joined && strings.HasPrefix(arg, "-") {
			if allowed[name] {
				filtered = append(filtered, arg)
			}
			continue
		}

		if !allowed[arg] {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// JsonConfigFlags returns the -c/-config path, or "".
func JsonConfigFlags() string {
	return LookupString("json", "Path to config file", "-c", "-config")
}

// EnvFileFlags returns the -e/-env path, or "".
func EnvFileFlags() string {
	return LookupString("env", "Path to .env file", "-e", "-env")
}

// LookupString returns the value of the last of names present in
// os.Args, or "". Parse errors are ignored.
func LookupString(set, usage string, names ...string) string {
	var value string

	fs := flag.NewFlagSet(set, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, n := range names {
		fs.StringVar(&value, strings.TrimLeft(n, "-"), "", usage)
	}
	_ = fs.Parse(FilterArgs(os.Args[1:], names))

	return value
}
