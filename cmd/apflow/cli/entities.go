package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// EntitiesOptions defines available flags for the entities command.
type EntitiesOptions struct {
	JSONOutput bool
	Stdout     io.Writer
	Stderr     io.Writer
}

// EntitiesCommand lists every contract with its supported operations.
func (c *ContractsCLI) EntitiesCommand(opts EntitiesOptions) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	descriptors := c.catalog.Descriptors()
	if opts.JSONOutput {
		if err := json.NewEncoder(opts.Stdout).Encode(descriptors); err != nil {
			_, _ = fmt.Fprintf(opts.Stderr, "entities: encode json: %v\n", err)
			return ExitInvalid
		}
		return ExitOK
	}
	tw := tabwriter.NewWriter(opts.Stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ENTITY\tOPERATIONS\tUPDATE")
	for _, d := range descriptors {
		ops := make([]string, len(d.Operations))
		for i, op := range d.Operations {
			ops[i] = string(op)
		}
		kind := string(d.UpdateKind)
		if kind == "" {
			kind = "-"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Name, strings.Join(ops, ","), kind)
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(opts.Stderr, "entities: %v\n", err)
		return ExitInvalid
	}
	return ExitOK
}
