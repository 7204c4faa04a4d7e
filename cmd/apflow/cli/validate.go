package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/apflow/apflow/internal/contracts"
)

// Exit codes shared by every command.
const (
	ExitOK      = 0
	ExitInvalid = 1
	ExitUsage   = 2
)

// ContractsCLI runs contract checks outside the HTTP server.
type ContractsCLI struct {
	catalog *contracts.Catalog
}

// NewContractsCLI constructs the helper. A nil catalog uses contracts.Default.
func NewContractsCLI(catalog *contracts.Catalog) *ContractsCLI {
	if catalog == nil {
		catalog = contracts.Default
	}
	return &ContractsCLI{catalog: catalog}
}

// ValidateOptions defines available flags for the validate command.
type ValidateOptions struct {
	Entity     string
	Operation  string
	Query      string
	JSONOutput bool
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
}

// ValidateSummary describes the JSON response for validate.
type ValidateSummary struct {
	OK        bool                  `json:"ok"`
	Entity    string                `json:"entity"`
	Operation string                `json:"operation"`
	Data      any                   `json:"data,omitempty"`
	Errors    contracts.FieldErrors `json:"errors,omitempty"`
}

// ValidateCommand checks one payload and prints the outcome. Bodies are read from Stdin;
// query parameters come from opts.Query.
func (c *ContractsCLI) ValidateCommand(opts ValidateOptions) int {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	entity := strings.TrimSpace(opts.Entity)
	if entity == "" {
		_, _ = fmt.Fprintln(opts.Stderr, "validate: -entity is required")
		return ExitUsage
	}

	op := contracts.Operation(strings.ToLower(strings.TrimSpace(opts.Operation)))
	var (
		out any
		err error
	)
	switch op {
	case contracts.OpCreate, contracts.OpUpdate:
		data, readErr := io.ReadAll(opts.Stdin)
		if readErr != nil {
			_, _ = fmt.Fprintf(opts.Stderr, "validate: read stdin: %v\n", readErr)
			return ExitUsage
		}
		if op == contracts.OpCreate {
			out, err = c.catalog.ValidateCreate(entity, data)
		} else {
			out, err = c.catalog.ValidateUpdate(entity, data)
		}
	case contracts.OpQuery:
		values, parseErr := url.ParseQuery(strings.TrimPrefix(opts.Query, "?"))
		if parseErr != nil {
			_, _ = fmt.Fprintf(opts.Stderr, "validate: invalid -query: %v\n", parseErr)
			return ExitUsage
		}
		out, err = c.catalog.ValidateQuery(entity, values)
	default:
		_, _ = fmt.Fprintf(opts.Stderr, "validate: -op must be create, update or query (got %q)\n", opts.Operation)
		return ExitUsage
	}

	summary := ValidateSummary{OK: err == nil, Entity: entity, Operation: string(op), Data: out}
	if err != nil {
		fe, ok := contracts.AsFieldErrors(err)
		if !ok {
			_, _ = fmt.Fprintf(opts.Stderr, "validate: %v\n", err)
			if errors.Is(err, contracts.ErrUnknownEntity) {
				_, _ = fmt.Fprintln(opts.Stderr, "run `apflow entities` to list the catalog")
			}
			return ExitUsage
		}
		summary.Errors = fe
	}

	if opts.JSONOutput {
		if err := json.NewEncoder(opts.Stdout).Encode(summary); err != nil {
			_, _ = fmt.Fprintf(opts.Stderr, "validate: encode json: %v\n", err)
			return ExitInvalid
		}
	} else if err := renderValidateHuman(opts.Stdout, summary); err != nil {
		_, _ = fmt.Fprintf(opts.Stderr, "validate: %v\n", err)
		return ExitInvalid
	}
	if !summary.OK {
		return ExitInvalid
	}
	return ExitOK
}

func renderValidateHuman(out io.Writer, summary ValidateSummary) error {
	if summary.OK {
		_, _ = fmt.Fprintf(out, "%s %s: valid\n", summary.Entity, summary.Operation)
		data, err := json.MarshalIndent(summary.Data, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(data))
		return nil
	}
	_, _ = fmt.Fprintf(out, "%s %s: %d violation(s)\n", summary.Entity, summary.Operation, len(summary.Errors))
	for _, fe := range summary.Errors {
		path := strings.Join(fe.Path, ".")
		if path == "" {
			path = "(body)"
		}
		_, _ = fmt.Fprintf(out, " - %s: %s\n", path, fe.Message)
	}
	return nil
}
