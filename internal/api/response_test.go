package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oxtaly/porkbun-wrapper/internal/apierrors"
)

func newResponse(status int, contentType, body string) *http.Response {
	header := http.Header{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// explodingReader fails the test if the classifier reads the body.
type explodingReader struct{ t *testing.T }

func (r explodingReader) Read([]byte) (int, error) {
	r.t.Error("body must not be read for a non-JSON content type")
	return 0, io.EOF
}

func TestClassify_TransportFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
		reason      error
	}{
		{"html page", "text/html; charset=UTF-8", "<html>blocked</html>", apierrors.ErrInvalidContentType},
		{"json body with wrong type", "text/plain", `{"status":"SUCCESS"}`, apierrors.ErrInvalidContentType},
		{"no content type", "", `{"status":"SUCCESS"}`, apierrors.ErrInvalidContentType},
		{"unparsable", "application/json", `{"status":`, apierrors.ErrInvalidJSON},
		{"not an object", "application/json", `["SUCCESS"]`, apierrors.ErrMissingStatus},
		{"missing status", "application/json", `{"yourIp":"1.2.3.4"}`, apierrors.ErrMissingStatus},
		{"unknown status", "application/json", `{"status":"PENDING"}`, apierrors.ErrInvalidStatus},
		{"non-string status", "application/json", `{"status":1}`, apierrors.ErrInvalidStatus},
		{"lowercase status", "application/json", `{"status":"success"}`, apierrors.ErrInvalidStatus},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			query := Query{Endpoint: "ping", URL: "https://api.example.com/ping"}

			_, err := Classify(newResponse(http.StatusOK, tt.contentType, tt.body), query, nil)

			var terr *TransportError
			require.True(t, errors.As(err, &terr), "expected *TransportError, got %T", err)
			assert.ErrorIs(t, err, tt.reason)
			assert.ErrorIs(t, err, apierrors.ErrTransport)
			assert.NotErrorIs(t, err, apierrors.ErrAPI)
			assert.Equal(t, query, terr.Query)
			assert.Equal(t, http.StatusOK, terr.StatusCode)
		})
	}
}

func TestClassify_ContentTypeCheckedBeforeParsing(t *testing.T) {
	resp := newResponse(http.StatusForbidden, "text/html", "")
	resp.Body = io.NopCloser(explodingReader{t: t})

	_, err := Classify(resp, Query{}, nil)
	assert.ErrorIs(t, err, apierrors.ErrInvalidContentType)

	var terr *TransportError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, "text/html", terr.ContentType)
	assert.Nil(t, terr.Body)
}

func TestClassify_ParseErrorCarriesCause(t *testing.T) {
	_, err := Classify(newResponse(http.StatusOK, "application/json", "not json"), Query{}, nil)

	var syntaxErr *json.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr), "parse error should be attached as the cause")

	var terr *TransportError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, []byte("not json"), terr.Body)
}

func TestClassify_ApplicationError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"with message", `{"status":"ERROR","message":"Domain is not opted in to API access."}`, "Domain is not opted in to API access."},
		{"without message", `{"status":"ERROR"}`, DefaultErrorMessage},
		{"non-string message", `{"status":"ERROR","message":42}`, DefaultErrorMessage},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Classify(newResponse(http.StatusBadRequest, "application/json", tt.body), Query{}, nil)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr), "expected *APIError, got %T", err)
			assert.Equal(t, tt.message, apiErr.Message)
			assert.Equal(t, "ERROR", apiErr.Payload["status"])
			assert.ErrorIs(t, err, apierrors.ErrAPI)
			assert.NotErrorIs(t, err, apierrors.ErrTransport)
		})
	}
}

func TestClassify_Success(t *testing.T) {
	body := `{"status":"SUCCESS","yourIp":"203.0.113.7","extra":{"nested":[1,2]}}`

	var out struct {
		Status string `json:"status"`
		YourIP string `json:"yourIp"`
	}
	raw, err := Classify(newResponse(http.StatusOK, "application/json; charset=utf-8", body), Query{}, &out)
	require.NoError(t, err)
	assert.Equal(t, body, string(raw))
	assert.Equal(t, "203.0.113.7", out.YourIP)
}

func TestClassify_SuccessWithUnexpectedShapeResolves(t *testing.T) {
	body := `{"status":"SUCCESS","id":{"a":1},"name":"www"}`

	var out struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	raw, err := Classify(newResponse(http.StatusOK, "application/json", body), Query{}, &out)
	require.NoError(t, err)
	assert.Equal(t, body, string(raw))
	assert.Zero(t, out.ID)
	assert.Equal(t, "www", out.Name)
}
