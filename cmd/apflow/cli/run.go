package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

const usage = `usage:
  apflow [serve]                                      start the HTTP server
  apflow validate -entity NAME -op create|update [-json] < payload.json
  apflow validate -entity NAME -op query -query 'page=2&limit=50' [-json]
  apflow entities [-json]                             list the contract catalog
`

// Run dispatches a non-server subcommand and returns the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		_, _ = fmt.Fprint(stderr, usage)
		return ExitUsage
	}
	c := NewContractsCLI(nil)
	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(stderr)
		opts := ValidateOptions{Stdin: stdin, Stdout: stdout, Stderr: stderr}
		fs.StringVar(&opts.Entity, "entity", "", "contract name, e.g. invoice")
		fs.StringVar(&opts.Operation, "op", "create", "create, update or query")
		fs.StringVar(&opts.Query, "query", "", "query string for -op query")
		fs.BoolVar(&opts.JSONOutput, "json", false, "print a JSON summary")
		if code, done := parse(fs, args[1:]); done {
			return code
		}
		return c.ValidateCommand(opts)
	case "entities":
		fs := flag.NewFlagSet("entities", flag.ContinueOnError)
		fs.SetOutput(stderr)
		opts := EntitiesOptions{Stdout: stdout, Stderr: stderr}
		fs.BoolVar(&opts.JSONOutput, "json", false, "print JSON")
		if code, done := parse(fs, args[1:]); done {
			return code
		}
		return c.EntitiesCommand(opts)
	case "help", "-h", "-help", "--help":
		_, _ = fmt.Fprint(stdout, usage)
		return ExitOK
	default:
		_, _ = fmt.Fprintf(stderr, "unknown command %q\n%s", args[0], usage)
		return ExitUsage
	}
}

func parse(fs *flag.FlagSet, args []string) (int, bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK, true
		}
		return ExitUsage, true
	}
	if fs.NArg() > 0 {
		_, _ = fmt.Fprintf(fs.Output(), "%s: unexpected arguments %v\n", fs.Name(), fs.Args())
		return ExitUsage, true
	}
	return 0, false
}
