package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorMapsSentinels(t *testing.T) {
	cases := []struct {
		err    error
		status int
		title  string
	}{
		{fmt.Errorf("%w: invoice", ErrNotFound), http.StatusNotFound, "Not Found"},
		{ErrValidation, http.StatusBadRequest, "Validation Failed"},
		{fmt.Errorf("%w: login update", ErrMethodNotAllowed), http.StatusMethodNotAllowed, "Method Not Allowed"},
		{ErrPayloadTooLarge, http.StatusRequestEntityTooLarge, "Payload Too Large"},
		{ErrRateLimited, http.StatusTooManyRequests, "Too Many Requests"},
		{errors.New("boom"), http.StatusInternalServerError, "Internal Error"},
	}
	for _, tc := range cases {
		rr := httptest.NewRecorder()
		RespondError(rr, tc.err)
		assert.Equal(t, tc.status, rr.Code)
		assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))

		var pd ProblemDetail
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pd))
		assert.Equal(t, tc.title, pd.Title)
		assert.Equal(t, tc.status, pd.Status)
	}
}

func TestInternalErrorsHideDetail(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondError(rr, errors.New("dial tcp 10.0.0.3:5432: refused"))
	assert.NotContains(t, rr.Body.String(), "10.0.0.3")
}

func TestValidationProblemCarriesErrors(t *testing.T) {
	rr := httptest.NewRecorder()
	ValidationProblem(rr, []map[string]any{{"path": []string{"email"}, "message": "Invalid email address"}})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{
		"title":"Validation Failed",
		"status":400,
		"detail":"validation failed",
		"errors":[{"path":["email"],"message":"Invalid email address"}]
	}`, rr.Body.String())
}

func TestReadBodyEnforcesLimit(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64)))
	_, err := ReadBody(httptest.NewRecorder(), req, 16)
	assert.ErrorIs(t, err, ErrPayloadTooLarge)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":1}`))
	data, err := ReadBody(httptest.NewRecorder(), req, 16)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))
}
