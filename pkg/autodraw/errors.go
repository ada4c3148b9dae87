package autodraw

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/askiada/go-autodraw/pkg/autodraw/api"
)

var (
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrNoActiveProject   = errors.New("no active project")
	ErrFetchFailed       = errors.New("fetch failed")
	ErrMalformedResponse = errors.New("malformed response")
	ErrInvalidProjectID  = errors.New("project id must be positive")
	ErrFetcherMustBeSet  = errors.New("fetcher must be set")
	ErrTokensMustBeSet   = errors.New("token source must be set")
)

// FetchError describes a failed fetch. It matches ErrFetchFailed with errors.Is and unwraps
// to the transport error, so context.Canceled or context.DeadlineExceeded stay visible.
type FetchError struct {
	Operation  string
	ProjectID  int
	StatusCode int
	Err        error
}

func newFetchError(operation string, projectID int, err error) *FetchError {
	fe := &FetchError{Operation: operation, ProjectID: projectID, Err: err}

	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		fe.StatusCode = statusErr.StatusCode
	}

	return fe
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s project %d: %s: %v", e.Operation, e.ProjectID, ErrFetchFailed, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed //nolint:errorlint // sentinel identity
}

func malformed(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedResponse, format, args...)
}
