package api

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/Oxtaly/porkbun-wrapper/internal/apierrors"
)

// Status discriminators.
const (
	StatusSuccess = "SUCCESS"
	StatusError   = "ERROR"
)

// Classify turns a raw response into a success payload, a *TransportError or
// an *APIError. The content type is checked before the body is parsed: an
// HTML page from a proxy or WAF must not be reported as a JSON error.
func Classify(resp *http.Response, query Query, out any) (json.RawMessage, error) {
	contentType := resp.Header.Get("Content-Type")
	fail := func(reason error, body []byte, cause error) error {
		return &TransportError{
			Reason:      reason,
			Query:       query,
			StatusCode:  resp.StatusCode,
			ContentType: contentType,
			Body:        body,
			Err:         cause,
		}
	}

	if mediaType, _, err := mime.ParseMediaType(contentType); err != nil || mediaType != "application/json" {
		return nil, fail(apierrors.ErrInvalidContentType, nil, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fail(apierrors.ErrInvalidJSON, nil, err)
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fail(apierrors.ErrInvalidJSON, body, err)
	}

	payload, ok := parsed.(map[string]any)
	if !ok {
		return nil, fail(apierrors.ErrMissingStatus, body, nil)
	}
	rawStatus, ok := payload["status"]
	if !ok {
		return nil, fail(apierrors.ErrMissingStatus, body, nil)
	}
	status, _ := rawStatus.(string)

	switch status {
	case StatusError:
		msg, _ := payload["message"].(string)
		if msg == "" {
			msg = DefaultErrorMessage
		}
		return nil, &APIError{Message: msg, Payload: payload, Query: query}
	case StatusSuccess:
		if out != nil {
			// Result types are best-effort. A field that does not fit is left
			// zero and the exact bytes are still returned.
			_ = json.Unmarshal(body, out)
		}
		return json.RawMessage(body), nil
	default:
		return nil, fail(apierrors.ErrInvalidStatus, body, nil)
	}
}
