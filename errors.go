package porkbun

import (
	"github.com/Oxtaly/porkbun-wrapper/internal/api"
	"github.com/Oxtaly/porkbun-wrapper/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrValidation is matched by every *ValidationError. No request is sent
	// when an argument fails validation.
	ErrValidation = apierrors.ErrValidation

	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrMissingSecretAPIKey is returned when no secret API key is provided.
	ErrMissingSecretAPIKey = apierrors.ErrMissingSecretAPIKey

	// ErrTransport is matched by every *TransportError.
	ErrTransport = apierrors.ErrTransport

	// ErrInvalidContentType is returned when the response is not JSON, such as
	// an HTML page served by a proxy or firewall.
	ErrInvalidContentType = apierrors.ErrInvalidContentType

	// ErrInvalidJSON is returned when the response body is not valid JSON.
	ErrInvalidJSON = apierrors.ErrInvalidJSON

	// ErrMissingStatus is returned when the response has no status field.
	ErrMissingStatus = apierrors.ErrMissingStatus

	// ErrInvalidStatus is returned when the status is neither SUCCESS nor ERROR.
	ErrInvalidStatus = apierrors.ErrInvalidStatus

	// ErrAPI is matched by every *APIError.
	ErrAPI = apierrors.ErrAPI
)

// DefaultErrorMessage is the APIError message used when the API reports an
// error without a message.
const DefaultErrorMessage = api.DefaultErrorMessage

// ValidationError lists every invalid argument of a call.
type ValidationError = apierrors.ValidationError

// TransportError reports a response that broke the API contract: wrong
// content type, invalid JSON, or a missing or unknown status. Its Reason is
// one of the transport sentinels above.
//
// Network failures such as a refused connection are not TransportErrors; they
// are returned exactly as the http.Client reported them.
type TransportError = api.TransportError

// APIError is returned when the API answers with status ERROR. Bad
// credentials, invalid record data and exceeded rate limits all surface as
// an APIError.
type APIError = api.APIError
