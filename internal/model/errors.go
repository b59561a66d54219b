package model

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")
	ErrUnauthorized       = errors.New("invalid or missing authentication token")
	ErrTokenExpired       = errors.New("authentication token expired")
	ErrAlreadyExists      = errors.New("already exists")
)

// Field error messages shared by validation code.
const (
	MsgRequired       = "This field is required."
	MsgBlank          = "This field may not be blank."
	MsgNull           = "This field may not be null."
	MsgTooLong        = "Ensure this field has no more than 255 characters."
	MsgPasswordShort  = "Ensure this field has at least 5 characters."
	MsgEmailTaken     = "user with this email already exists."
	MsgInvalidEmail   = "Enter a valid email address."
	MsgPriceDigits    = "Ensure that there are no more than 5 digits in total."
	MsgPricePlaces    = "Ensure that there are no more than 2 decimal places."
	MsgPriceWhole     = "Ensure that there are no more than 3 digits before the decimal point."
	MsgNegative       = "Ensure this value is greater than or equal to 0."
	MsgUnknownID      = "Invalid pk - object does not exist."
	MsgNotImage       = "Upload a valid image."
	NonFieldErrorsKey = "non_field_errors"
)

// ValidationError carries per-field messages for rejected input.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError creates a ValidationError with a single field message.
func NewValidationError(field, msg string) *ValidationError {
	e := &ValidationError{}
	e.Add(field, msg)
	return e
}

// Add appends msg to the messages of field.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

// Empty reports whether no field message was recorded.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// Err returns e as an error, or nil when no message was recorded.
func (e *ValidationError) Err() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e.Fields[f], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
