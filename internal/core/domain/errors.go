package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Render Errors.

	// ErrInvalidInvoice indicates the invoice record is malformed, is missing
	// a required field or carries a negative amount.
	ErrInvalidInvoice = errors.New("invalid invoice")

	// ErrConversion indicates an amount could not be converted to words.
	ErrConversion = errors.New("amount conversion failed")

	// ErrRenderIO indicates the output sink could not be opened or written.
	ErrRenderIO = errors.New("render output failed")
)

// InvalidInvoiceError describes which part of an invoice was rejected.
// It matches ErrInvalidInvoice with errors.Is.
type InvalidInvoiceError struct {
	// Field is the dotted path of the offending field, e.g. "items[2].quantity".
	Field string

	// Reason says what is wrong with it.
	Reason string
}

func (e *InvalidInvoiceError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidInvoice, e.Field, e.Reason)
}

// Is reports whether target is ErrInvalidInvoice.
func (e *InvalidInvoiceError) Is(target error) bool {
	return target == ErrInvalidInvoice
}

// ConversionError is returned when an amount has no words representation.
// It matches ErrConversion with errors.Is.
type ConversionError struct {
	// Amount is the rejected amount as text.
	Amount string

	// Reason says why it was rejected.
	Reason string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrConversion, e.Amount, e.Reason)
}

// Is reports whether target is ErrConversion.
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// RenderIOError wraps a failure of the output sink or rendering engine.
// It matches ErrRenderIO with errors.Is and unwraps to the cause.
type RenderIOError struct {
	// Op is the operation that failed, e.g. "write" or "rename".
	Op string

	// Err is the underlying error.
	Err error
}

func (e *RenderIOError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrRenderIO, e.Op, e.Err)
}

// Is reports whether target is ErrRenderIO.
func (e *RenderIOError) Is(target error) bool {
	return target == ErrRenderIO
}

// Unwrap returns the underlying error.
func (e *RenderIOError) Unwrap() error {
	return e.Err
}
