package textrecord

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when Marshal receives no records or a record it cannot read,
	// or when Unmarshal receives an unusable destination.
	ErrInvalidArgument = errors.New("textrecord: invalid argument")
	// ErrMalformedInput is returned when Unmarshal receives fewer than a header and one data row.
	ErrMalformedInput = errors.New("textrecord: file was empty or missing data rows")
	// ErrUnsupportedType is returned when a record type cannot be described as a flat list of fields.
	ErrUnsupportedType = errors.New("textrecord: unsupported record type")
	// ErrConversion matches every *ConversionError via errors.Is.
	ErrConversion = errors.New("textrecord: conversion failed")
)

// ConversionError reports a column value that could not be converted into its field's type.
type ConversionError struct {
	Line  int    // 1-based line number in the text, the header being line 1
	Field string // field name the column was matched to
	Value string // offending text
	Err   error
}

// Error formats the conversion failure with the stored line, field, and value.
func (e *ConversionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("textrecord: cannot convert %q into field %s on line %d: %v", e.Value, e.Field, e.Line, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *ConversionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is ErrConversion.
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}
