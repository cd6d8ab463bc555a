package fred

import "fmt"

// ErrorKind tags a fetch failure for retry and reporting decisions.
type ErrorKind string

const (
	// KindConfiguration means the client is missing its credential or is
	// otherwise misconfigured. Never retried, never hits the network.
	KindConfiguration ErrorKind = "configuration"

	// KindRateLimited means the API answered 429. Retried with the long
	// backoff schedule.
	KindRateLimited ErrorKind = "rate_limited"

	// KindTransient covers timeouts, connection failures and 5xx answers.
	KindTransient ErrorKind = "transient"

	// KindMalformed means the response body was not decodable JSON.
	// Retried with a flat one-second wait.
	KindMalformed ErrorKind = "malformed"

	// KindPermanent covers 400, 401 and other 4xx answers. Not retried.
	KindPermanent ErrorKind = "permanent"

	// KindDataAbsent means the API answered cleanly but carried no usable
	// value: empty observation list, the "." NA sentinel, or a value that
	// does not parse as a number. Not retried.
	KindDataAbsent ErrorKind = "data_absent"
)

// Error is a tagged fetch failure.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Retryable reports whether another attempt may succeed.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindRateLimited, KindTransient, KindMalformed:
		return true
	}
	return false
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
