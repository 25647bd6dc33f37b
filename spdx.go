// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package spdx provides typed models, validation, and serialization for
// SPDX software bill-of-materials documents in their JSON wire format.
//
// The root package holds only what every layer shares: the Opt type for
// optional scalar fields and the SPDX value sentinels. Version-specific
// entities live in subpackages (spdx23 for SPDX 2.3); reading and writing
// whole documents lives in the json and yaml subpackages.
package spdx

// Well-known SPDX sentinel values, accepted wherever a field permits
// declining to assert a value.
const (
	NoAssertion = "NOASSERTION"
	None        = "NONE"
)

// Opt is an optional scalar field value with three states: unset, set to
// null, or set to a value. The zero value is unset. Whether a field was
// ever assigned is what drives serialization's omission policy, so Opt
// keeps that bit explicitly instead of overloading the zero value.
type Opt[T any] struct {
	value   T
	present bool
	null    bool
}

// Some returns an Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, present: true}
}

// Null returns an Opt that is set, but to an explicit null.
func Null[T any]() Opt[T] {
	return Opt[T]{present: true, null: true}
}

// IsSet reports whether the field was assigned at all, including an
// assignment to null.
func (o Opt[T]) IsSet() bool { return o.present }

// IsNull reports whether the field was explicitly set to null.
func (o Opt[T]) IsNull() bool { return o.null }

// Value returns the held value. The second return is false when the field
// is unset or null.
func (o Opt[T]) Value() (T, bool) {
	if !o.present || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// Or returns the held value, or fallback when the field is unset or null.
func (o Opt[T]) Or(fallback T) T {
	if v, ok := o.Value(); ok {
		return v
	}
	return fallback
}
