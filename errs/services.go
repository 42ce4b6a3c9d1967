package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Remote document-store errors. A RemoteUnavailable failure on load is
// recovered locally by falling back to the bundled dataset; on a mutation it
// is returned to the caller so the action can be surfaced as failed.
var (
	ErrRemoteUnavailable = errors.New("remote store unavailable")
	ErrDocumentNotFound  = errors.New("document not found")
)

// Third-party collaborator errors (LLM generation, image hosting).
var (
	ErrGenerationFailed  = errors.New("generation failed")
	ErrMalformedResponse = errors.New("malformed model response")
	ErrUploadFailed      = errors.New("upload failed")
	ErrPartialFailure    = errors.New("partial failure")
)

func NewRemoteUnavailableError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrRemoteUnavailable,
		Details:    fmt.Sprintf("Remote store unreachable during %s", operation),
		Cause:      cause,
	}
}

func NewDocumentNotFoundError(id string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        ErrDocumentNotFound,
		Details:    fmt.Sprintf("No document with id %s", id),
		Field:      "id",
	}
}

func NewGenerationError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrGenerationFailed,
		Details:    "The model did not return a usable completion",
		Cause:      cause,
	}
}

// NewMalformedResponseError covers the generation path returning something
// that is not the expected JSON object. Callers must catch this; it is a
// user-visible failure, never silently dropped.
func NewMalformedResponseError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrMalformedResponse,
		Details:    "Model output could not be parsed as a project-detail object",
		Cause:      cause,
		Field:      "json",
	}
}

func NewUploadError(filename string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrUploadFailed,
		Details:    fmt.Sprintf("Failed to upload %s", filename),
		Cause:      cause,
	}
}

// NewPartialFailureError reports a multi-unit action that stopped at the
// first failing unit. Units confirmed before the failure are not rolled back.
func NewPartialFailureError(operation string, completed int, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrPartialFailure,
		Details:    fmt.Sprintf("%s aborted after %d completed unit(s)", operation, completed),
		Cause:      cause,
	}
}

func IsRemoteUnavailable(err error) bool {
	return errors.Is(err, ErrRemoteUnavailable)
}

func IsDocumentNotFound(err error) bool {
	return errors.Is(err, ErrDocumentNotFound)
}

func IsMalformedResponse(err error) bool {
	return errors.Is(err, ErrMalformedResponse)
}
