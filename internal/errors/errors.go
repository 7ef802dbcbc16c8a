// Package errors provides structured error types for newsdesk.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindIO
	KindConfig
	KindTransport
	KindApplication
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindTransport:
		return "transport error"
	case KindApplication:
		return "application error"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for newsdesk.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context

	serverMessage string // message sent by the backend with success:false
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Backend errors

// TransportFailed wraps a network, status or decode failure talking to the backend.
func TransportFailed(endpoint string, err error) error {
	return E(Op("api.Do"), KindTransport, fmt.Sprintf("request to %s failed", endpoint), err)
}

// ApplicationFailed reports a response that parsed but carried success:false.
// message is the server-provided error string and may be empty.
func ApplicationFailed(endpoint, message string) error {
	reason := message
	if reason == "" {
		reason = "server reported failure"
	}
	return &Error{
		Op:            Op("api.Do"),
		Kind:          KindApplication,
		Err:           fmt.Errorf("%s: %s", endpoint, reason),
		serverMessage: message,
	}
}

// ServerMessage returns the server-provided message of an application error,
// or "" when err is not one or the server sent none.
func ServerMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindApplication {
		return ""
	}
	return e.serverMessage
}

// UI errors
func TabNotFound(name string) error {
	return E(Op("ui.SwitchTab"), KindNotFound, fmt.Sprintf("tab %q not found", name))
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}
