package model

import "errors"

// ErrorKind classifies why a fetch or save failed
type ErrorKind string

const (
	ErrorKindNone             ErrorKind = ""
	ErrorKindNetwork          ErrorKind = "network"
	ErrorKindUpstreamProtocol ErrorKind = "upstream_protocol"
	ErrorKindDecode           ErrorKind = "decode"
	ErrorKindIO               ErrorKind = "io"
	ErrorKindUnknown          ErrorKind = "unknown"
)

// Sentinel errors, one per kind. Failures wrap them with %w.
var (
	ErrNetwork          = errors.New("network failure")
	ErrUpstreamProtocol = errors.New("unexpected upstream response")
	ErrDecode           = errors.New("image decode failed")
	ErrIO               = errors.New("filesystem error")
)

// String returns the string representation of ErrorKind
func (k ErrorKind) String() string {
	if k == ErrorKindNone {
		return "none"
	}
	return string(k)
}

// KindOf reports the kind of err. A nil error has kind ErrorKindNone.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorKindNone
	case errors.Is(err, ErrNetwork):
		return ErrorKindNetwork
	case errors.Is(err, ErrUpstreamProtocol):
		return ErrorKindUpstreamProtocol
	case errors.Is(err, ErrDecode):
		return ErrorKindDecode
	case errors.Is(err, ErrIO):
		return ErrorKindIO
	default:
		return ErrorKindUnknown
	}
}
