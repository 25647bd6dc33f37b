// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "kind only",
			err:  &Error{Kind: ErrMalformedInput},
			want: "malformed input",
		},
		{
			name: "path and detail",
			err: &Error{
				Kind:   ErrMissingRequiredField,
				Path:   "creationInfo.created",
				Detail: `CreationInfo requires "created"`,
			},
			want: `creationInfo.created: missing required field: CreationInfo requires "created"`,
		},
		{
			name: "indexed path",
			err: &Error{
				Kind:   ErrConstraintViolation,
				Path:   "packages[0].checksums[2].checksumValue",
				Detail: "value must be hexadecimal",
			},
			want: "packages[0].checksums[2].checksumValue: constraint violation: value must be hexadecimal",
		},
		{
			name: "wrapped cause",
			err: &Error{
				Kind:   ErrMalformedInput,
				Detail: "invalid JSON",
				Err:    errors.New("unexpected EOF"),
			},
			want: "malformed input: invalid JSON: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Kind:   ErrUnknownEnumValue,
		Path:   "packages[0].checksums[0].algorithm",
		Value:  "sha1",
		Detail: `"sha1" is not a member of ChecksumAlgorithm`,
	}

	assert.ErrorIs(t, err, ErrUnknownEnumValue)
	assert.NotErrorIs(t, err, ErrTypeMismatch)

	// The kind survives further wrapping.
	wrapped := fmt.Errorf("reading sbom.json: %w", err)
	assert.ErrorIs(t, wrapped, ErrUnknownEnumValue)

	var ve *Error
	require.ErrorAs(t, wrapped, &ve)
	assert.Equal(t, "packages[0].checksums[0].algorithm", ve.Path)
	assert.Equal(t, "sha1", ve.Value)
}

func TestError_UnwrapCause(t *testing.T) {
	cause := errors.New("yaml: line 3: mapping values are not allowed")
	err := &Error{Kind: ErrMalformedInput, Detail: "invalid YAML", Err: cause}

	// Both the kind and the tokenizer error are reachable.
	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.ErrorIs(t, err, cause)
}
