package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	ID       string
	Err      error
}

func (e NotFoundError) Error() string {
	switch {
	case e.Resource != "" && e.ID != "":
		return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
	case e.Resource != "":
		return fmt.Sprintf("%s not found", e.Resource)
	default:
		return "not found"
	}
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// UnknownTaxiTypeError marks a vehicle class missing from the fare catalog.
type UnknownTaxiTypeError struct {
	TaxiType string
}

func (e UnknownTaxiTypeError) Error() string {
	if e.TaxiType == "" {
		return "unknown taxi type"
	}
	return fmt.Sprintf("unknown taxi type %q", e.TaxiType)
}

// EmptyLedgerError rejects exports and reports over an empty ledger.
type EmptyLedgerError struct{}

func (e EmptyLedgerError) Error() string {
	return "no trips recorded yet"
}

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsUnknownTaxiType(err error) bool {
	var target UnknownTaxiTypeError
	return errors.As(err, &target)
}

func IsEmptyLedger(err error) bool {
	var target EmptyLedgerError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
