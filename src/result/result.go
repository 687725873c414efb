// Package result defines the envelope every vigil operation returns.
// Commands construct an envelope from an API call or a local validation
// failure, hand it to the output layer, and never mutate it afterwards.
package result

// Envelope is the tagged outcome of a single operation. Exactly one
// variant holds per value: Ok true with Data set, or Ok false with
// Message (and optionally Code and Cause) set.
type Envelope[T any] struct {
	Ok      bool   `json:"ok"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

// Success wraps a payload in the success variant.
func Success[T any](data T) Envelope[T] {
	return Envelope[T]{Ok: true, Data: data}
}

// Failure builds the failure variant. Code 0 means "unspecified" and
// maps to exit code 1; cause may be empty.
func Failure[T any](message string, code int, cause string) Envelope[T] {
	return Envelope[T]{Message: message, Code: code, Cause: cause}
}

// ExitCode maps the envelope to a process exit code: 0 for success,
// the explicit failure code when present, otherwise 1.
func (e Envelope[T]) ExitCode() int {
	if e.Ok {
		return 0
	}
	if e.Code != 0 {
		return e.Code
	}
	return 1
}
