package core

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientFunds = errors.New("not enough funds")
	ErrDuplicateName     = errors.New("name already in use")
	ErrEmptyName         = errors.New("name must not be empty")
	ErrUnknownIndustry   = errors.New("unknown industry")
	ErrUnknownCity       = errors.New("unknown city")
	ErrUnknownMaterial   = errors.New("unknown material")
	ErrUnknownUpgrade    = errors.New("unknown upgrade")
	ErrUnknownResearch   = errors.New("unknown research")
	ErrNoResearchTree    = errors.New("industry has no research tree")
	ErrInvalidJob        = errors.New("not a valid job")
	ErrInvalidAmount     = errors.New("amount must be a non-negative number")
	ErrInvalidPercent    = errors.New("percent out of range")
	ErrFacilityExists    = errors.New("facility already exists in this city")
)

// ActionError wraps a failure with the operation and the subject it was
// aimed at, so callers can log or display "makeProduct \"Widget\": name
// already in use" without reconstructing context.
type ActionError struct {
	Op      string
	Subject string
	Err     error
}

func (e *ActionError) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Subject, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }

// WrapActionError attaches operation context to err. Returns nil for a
// nil err so call sites can wrap unconditionally.
func WrapActionError(op, subject string, err error) error {
	if err == nil {
		return nil
	}
	return &ActionError{Op: op, Subject: subject, Err: err}
}
