package testutils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// ExecuteJSONRequest sends a request to handler and returns the recorded response.
// body is marshaled to JSON unless it is nil, a string or a []byte, which are
// sent verbatim.
func ExecuteJSONRequest(
	t *testing.T,
	handler http.Handler,
	method, path string,
	body interface{},
) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	case []byte:
		payload = b
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err, "Failed to marshal request body")
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// DecodeJSONBody decodes the recorded response body into a generic map.
func DecodeJSONBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body),
		"Response body is not a JSON object: %s", rr.Body.String())
	return body
}

// DecodeJSONInto decodes the recorded response body into v.
func DecodeJSONInto(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v),
		"Failed to decode response body: %s", rr.Body.String())
}

// AssertErrorResponse checks the status code and "error" field of an error response.
func AssertErrorResponse(
	t *testing.T,
	rr *httptest.ResponseRecorder,
	expectedStatus int,
	expectedError string,
) map[string]interface{} {
	t.Helper()

	require.Equal(t, expectedStatus, rr.Code, "Unexpected status code, body: %s", rr.Body.String())
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	body := DecodeJSONBody(t, rr)
	require.Equal(t, expectedError, body["error"])
	return body
}
