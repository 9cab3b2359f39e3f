// Package apperr carries the error taxonomy shared by services and the HTTP
// layer: not-found, business-rule violations and everything else (unexpected).
package apperr

import "errors"

// Kind classifies an application error for boundary-layer mapping.
type Kind int

const (
	KindUnexpected Kind = iota
	KindNotFound
	KindBusinessRule
)

// Error is a classified application error with a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// NotFound builds an error for a referenced entity that does not exist.
func NotFound(msg string) error { return &Error{Kind: KindNotFound, Message: msg} }

// BusinessRule builds an error for a semantically valid but policy-rejected
// operation.
func BusinessRule(msg string) error { return &Error{Kind: KindBusinessRule, Message: msg} }

// KindOf extracts the kind of err; anything that is not an *Error is
// unexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsBusinessRule(err error) bool { return KindOf(err) == KindBusinessRule }
