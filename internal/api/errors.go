package api

import (
	"fmt"

	"github.com/Oxtaly/porkbun-wrapper/internal/apierrors"
)

// DefaultErrorMessage is used when an ERROR response carries no message.
const DefaultErrorMessage = "unknown error returned by the Porkbun API"

// TransportError reports an HTTP exchange that completed but broke the
// response contract: wrong content type, unparsable JSON, or a missing or
// invalid status field.
type TransportError struct {
	// Reason is one of the apierrors transport sentinels.
	Reason      error
	Query       Query
	StatusCode  int
	ContentType string
	// Body is the raw response body, when it was read.
	Body []byte
	// Err is the underlying cause, such as a JSON syntax error.
	Err error
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("transport error: %v (HTTP %d from %s)", e.Reason, e.StatusCode, e.Query.URL)
	if e.Reason == apierrors.ErrInvalidContentType {
		msg = fmt.Sprintf("transport error: %v %q (HTTP %d from %s)", e.Reason, e.ContentType, e.StatusCode, e.Query.URL)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *TransportError) Is(target error) bool {
	return target == apierrors.ErrTransport || target == e.Reason
}

// APIError is returned when the API answers with status ERROR.
type APIError struct {
	Message string
	// Payload is the full parsed error response.
	Payload map[string]any
	Query   Query
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s", e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	return target == apierrors.ErrAPI
}
