package pdfdump

import "errors"

// Sentinel errors returned by the library.
var (
	// ErrProviderUnavailable is returned when none of the candidate
	// providers is registered or initializes successfully.
	ErrProviderUnavailable = errors.New("pdfdump: no PDF provider available")
)

// DocumentError reports a failure while opening a document or extracting
// its text.
type DocumentError struct {
	Path string
	// Page is the 1-based page being processed, or 0 if the failure
	// happened before page iteration started.
	Page int
	Err  error
}

// Error returns the underlying message unchanged, so that it can be
// reported verbatim on the ERROR line.
func (e *DocumentError) Error() string {
	return e.Err.Error()
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}
