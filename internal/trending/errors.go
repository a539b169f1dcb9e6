package trending

import (
	"errors"
	"fmt"
)

// ErrorKind is the category of a provider failure
type ErrorKind int

const (
	// ErrKindConfig means the client is not usable (no API key, bad base URL)
	ErrKindConfig ErrorKind = iota
	// ErrKindNetwork means the request never produced a response
	ErrKindNetwork
	// ErrKindHTTP means the API answered with a non-200 status
	ErrKindHTTP
	// ErrKindParse means the response or the model output was not the expected JSON
	ErrKindParse
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindConfig:
		return "Config Error"
	case ErrKindNetwork:
		return "Network Error"
	case ErrKindHTTP:
		return "HTTP Error"
	case ErrKindParse:
		return "Parse Error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// ErrNoAPIKey is returned when no Gemini API key is configured
var ErrNoAPIKey = errors.New("no Gemini API key configured")

// Error describes a failed provider call
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int // HTTP status, when Kind is ErrKindHTTP
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a provider *Error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func newError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
