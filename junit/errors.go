package junit

import (
	"errors"
	"fmt"
)

// Kind identifies the failure class of an ingestion error.
type Kind string

const (
	KindSizeExceeded      Kind = "SizeExceeded"
	KindMaliciousContent  Kind = "MaliciousContent"
	KindMaxDepthExceeded  Kind = "MaxDepthExceeded"
	KindTooManyProperties Kind = "TooManyProperties"
	KindMissingAttribute  Kind = "MissingRequiredAttribute"
	KindNotADirectory     Kind = "NotADirectory"
	KindFileSystem        Kind = "FileSystemError"
	KindMalformedXML      Kind = "MalformedXml"
)

// Error is the only error type produced by this package. Path is set when
// the failure is tied to a specific file.
type Error struct {
	Kind Kind
	Path string
	Msg  string
}

func (e *Error) Error() string {
	if e.Path != "" {
		return e.Path + ": " + e.Msg
	}
	return e.Msg
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// withPath attaches a file path to an ingestion error without losing its
// kind.
func withPath(err error, path string) error {
	var ie *Error
	if errors.As(err, &ie) {
		return &Error{Kind: ie.Kind, Path: path, Msg: ie.Msg}
	}
	return fmt.Errorf("%s: %w", path, err)
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var ie *Error
	return errors.As(err, &ie) && ie.Kind == kind
}
