// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package validation defines the structured failure vocabulary shared by
// every layer of the module. A failing operation returns exactly one
// *Error carrying the failure kind, the field path at which it occurred,
// and the offending value. Kinds are package-level sentinels so callers
// can branch with errors.Is.
package validation

import (
	"errors"
	"strings"
)

// Failure kinds. Every *Error wraps exactly one of these.
var (
	// ErrTypeMismatch reports a JSON value whose type differs from the
	// declared field shape, including null where a value is required.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrMissingRequiredField reports a required field absent from an
	// input object.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrUnknownEnumValue reports a string that is not a member of the
	// field's closed enumeration.
	ErrUnknownEnumValue = errors.New("unknown enum value")

	// ErrConstraintViolation reports a well-typed value that violates a
	// declared value constraint (pattern, format, emptiness, minimum
	// element count).
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrUnsupportedSchemaVersion reports a document whose declared
	// version has no registered schema.
	ErrUnsupportedSchemaVersion = errors.New("unsupported schema version")

	// ErrMalformedInput reports input that is not parseable at all; the
	// tokenizer's error is preserved in Err.
	ErrMalformedInput = errors.New("malformed input")
)

// Error is a single validation failure.
type Error struct {
	// Kind is one of the Err sentinels above.
	Kind error

	// Path locates the failure from the document root in dot/bracket
	// form using wire field names, e.g. "packages[0].checksums[2]".
	// Empty for document-level failures.
	Path string

	// Value is the offending input value, when one exists.
	Value any

	// Detail is a human-readable explanation.
	Detail string

	// Err is the underlying error, set when an external tokenizer or
	// reader failed.
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.Error())
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes the failure kind and any underlying error to errors.Is
// and errors.As.
func (e *Error) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
