package models

import "fmt"

// ParseError is returned when a model response cannot be coerced to the expected type.
type ParseError struct {
	Trial int
	Raw   string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("trial %d: unable to parse response %q as integer: %v", e.Trial, e.Raw, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FetchError covers unreachable URLs, non-2xx statuses and non-image payloads.
type FetchError struct {
	URL        string
	StatusCode int
	Reason     string
	Err        error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("fetch %s", e.URL)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when fetched bytes are not a decodable image.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode image from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// UpstreamError wraps failures of the completion or inference services,
// including missing or rejected credentials.
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
