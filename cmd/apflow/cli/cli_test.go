package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	code := Run(args, strings.NewReader(stdin), stdout, stderr)
	return code, stdout.String(), stderr.String()
}

func TestValidateCommandJSONSuccess(t *testing.T) {
	code, stdout, stderr := run(t,
		`{"invoiceNumber":"INV-1","vendorName":"Acme","totalAmount":10}`,
		"validate", "-entity", "invoice", "-op", "create", "-json")
	require.Equal(t, ExitOK, code, stderr)

	var summary struct {
		OK        bool           `json:"ok"`
		Entity    string         `json:"entity"`
		Operation string         `json:"operation"`
		Data      map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	assert.True(t, summary.OK)
	assert.Equal(t, "invoice", summary.Entity)
	assert.Equal(t, "create", summary.Operation)
	assert.Equal(t, "USD", summary.Data["currency"])
}

func TestValidateCommandReportsViolations(t *testing.T) {
	code, stdout, _ := run(t, `{"email":"nope"}`, "validate", "-entity", "login")
	assert.Equal(t, ExitInvalid, code)
	assert.Contains(t, stdout, "login create: 2 violation(s)")
	assert.Contains(t, stdout, " - email: Invalid email address")
	assert.Contains(t, stdout, " - password: Required")

	code, stdout, _ = run(t, `{}`, "validate", "-entity", "supplier", "-op", "update", "-json")
	assert.Equal(t, ExitInvalid, code)
	assert.JSONEq(t, `{
		"ok":false,
		"entity":"supplier",
		"operation":"update",
		"errors":[{"path":[],"message":"At least one field must be provided for update"}]
	}`, stdout)
}

func TestValidateCommandQuery(t *testing.T) {
	code, stdout, stderr := run(t, "", "validate", "-entity", "invoice", "-op", "query", "-query", "?page=3&sortOrder=asc", "-json")
	require.Equal(t, ExitOK, code, stderr)
	assert.JSONEq(t, `{
		"ok":true,
		"entity":"invoice",
		"operation":"query",
		"data":{"page":3,"limit":20,"sortOrder":"asc","sortBy":"createdAt"}
	}`, stdout)

	code, stdout, _ = run(t, "", "validate", "-entity", "invoice", "-op", "query", "-query", "limit=0")
	assert.Equal(t, ExitInvalid, code)
	assert.Contains(t, stdout, " - limit: Must be greater than or equal to 1")
}

func TestValidateCommandRootErrorsInHumanOutput(t *testing.T) {
	code, stdout, _ := run(t, `[1,2]`, "validate", "-entity", "magic_link")
	assert.Equal(t, ExitInvalid, code)
	assert.Contains(t, stdout, " - (body): Expected object, received array")
}

func TestValidateCommandUsageErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"missing entity", []string{"validate"}, "-entity is required"},
		{"unknown entity", []string{"validate", "-entity", "widget"}, "apflow entities"},
		{"bad op", []string{"validate", "-entity", "invoice", "-op", "delete"}, "-op must be"},
		{"unsupported op", []string{"validate", "-entity", "login", "-op", "query"}, "operation not supported"},
		{"bad query", []string{"validate", "-entity", "invoice", "-op", "query", "-query", "a=%zz"}, "invalid -query"},
		{"unknown flag", []string{"validate", "-bogus"}, "flag provided but not defined"},
		{"extra args", []string{"entities", "extra"}, "unexpected arguments"},
		{"unknown command", []string{"frobnicate"}, "unknown command"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, stderr := run(t, `{}`, tc.args...)
			assert.Equal(t, ExitUsage, code)
			assert.Contains(t, stderr, tc.want)
		})
	}
}

func TestEntitiesCommand(t *testing.T) {
	code, stdout, _ := run(t, "", "entities")
	require.Equal(t, ExitOK, code)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 28)
	assert.True(t, strings.HasPrefix(lines[0], "ENTITY"))
	assert.Contains(t, stdout, "payment_batch")
	assert.Regexp(t, `login\s+create\s+-`, stdout)
	assert.Regexp(t, `virtual_card\s+create,update,query\s+narrow`, stdout)

	code, stdout, _ = run(t, "", "entities", "-json")
	require.Equal(t, ExitOK, code)
	var descriptors []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &descriptors))
	assert.Len(t, descriptors, 27)
}

func TestHelp(t *testing.T) {
	code, stdout, _ := run(t, "", "help")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, stdout, "usage:")

	code, _, stderr := run(t, "")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "usage:")
}
