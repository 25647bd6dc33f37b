// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"encoding/json"
	"testing"

	"github.com/dacolabs/spdx/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	e, err := Parse(widgetDef, widgetInput())
	require.NoError(t, err)

	w, ok := e.(*widget)
	require.True(t, ok)

	// Check required scalars
	assert.Equal(t, "W-1", w.ID)
	assert.Equal(t, "BETA", w.Grade)

	// Check optional scalars carry presence
	count, ok := w.Count.Value()
	require.True(t, ok)
	assert.Equal(t, 3, count)
	active, ok := w.Active.Value()
	require.True(t, ok)
	assert.True(t, active)

	// Check an explicit null is recorded as distinct from unset
	assert.True(t, w.Note.IsSet())
	assert.True(t, w.Note.IsNull())

	// Check sequences
	assert.Equal(t, []string{"alpha", "tooling"}, w.Tags)
	require.Len(t, w.Parts, 2)
	assert.Equal(t, "P-1", w.Parts[0].ID)
	size, ok := w.Parts[0].Size.Value()
	require.True(t, ok)
	assert.Equal(t, 10, size)
	assert.False(t, w.Parts[1].Size.IsSet())

	// Check nested entity and free-form object
	require.NotNil(t, w.Main)
	assert.Equal(t, "P-0", w.Main.ID)
	assert.Equal(t, map[string]any{"vendor": "acme"}, w.Extra)
}

func TestParse_MinimalInput(t *testing.T) {
	e, err := Parse(widgetDef, map[string]any{
		"id":    "W-2",
		"grade": "ALPHA",
		"parts": []any{map[string]any{"id": "P-1"}},
	})
	require.NoError(t, err)

	w := e.(*widget)
	assert.Equal(t, "W-2", w.ID)
	assert.False(t, w.Count.IsSet())
	assert.False(t, w.Active.IsSet())
	assert.False(t, w.Note.IsSet())
	assert.Nil(t, w.Tags)
	assert.Nil(t, w.Main)
	assert.Nil(t, w.Extra)
}

func TestParse_IgnoresUnknownKeys(t *testing.T) {
	in := widgetInput()
	in["somethingElse"] = "whatever"
	in["nested"] = map[string]any{"deep": true}

	_, err := Parse(widgetDef, in)
	assert.NoError(t, err)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(map[string]any)
		wantKind error
		wantPath string
		wantErr  string
	}{
		{
			name:     "missing required field",
			mutate:   func(in map[string]any) { delete(in, "id") },
			wantKind: validation.ErrMissingRequiredField,
			wantPath: "id",
			wantErr:  `Widget requires "id"`,
		},
		{
			name:     "null on required field",
			mutate:   func(in map[string]any) { in["id"] = nil },
			wantKind: validation.ErrTypeMismatch,
			wantPath: "id",
			wantErr:  "required field must not be null, got null",
		},
		{
			name:     "null on optional non-string field",
			mutate:   func(in map[string]any) { in["count"] = nil },
			wantKind: validation.ErrTypeMismatch,
			wantPath: "count",
			wantErr:  "field does not accept null, got null",
		},
		{
			name:     "string where integer expected",
			mutate:   func(in map[string]any) { in["count"] = "3" },
			wantKind: validation.ErrTypeMismatch,
			wantPath: "count",
			wantErr:  "expected an integer, got string",
		},
		{
			name:     "number where boolean expected",
			mutate:   func(in map[string]any) { in["active"] = json.Number("1") },
			wantKind: validation.ErrTypeMismatch,
			wantPath: "active",
			wantErr:  "expected a boolean, got number",
		},
		{
			name:     "number where string expected",
			mutate:   func(in map[string]any) { in["note"] = json.Number("7") },
			wantKind: validation.ErrTypeMismatch,
			wantPath: "note",
			wantErr:  "expected a string, got number",
		},
		{
			name:     "constraint violation",
			mutate:   func(in map[string]any) { in["id"] = "" },
			wantKind: validation.ErrConstraintViolation,
			wantPath: "id",
			wantErr:  "must not be empty",
		},
		{
			name:     "unknown enum value",
			mutate:   func(in map[string]any) { in["grade"] = "beta" },
			wantKind: validation.ErrUnknownEnumValue,
			wantPath: "grade",
			wantErr:  `"beta" is not a member of Grade (ALPHA, BETA, RC)`,
		},
		{
			name:     "too few elements",
			mutate:   func(in map[string]any) { in["parts"] = []any{} },
			wantKind: validation.ErrConstraintViolation,
			wantPath: "parts",
			wantErr:  "requires at least 1 element(s)",
		},
		{
			name:     "null array element",
			mutate:   func(in map[string]any) { in["tags"] = []any{"alpha", nil} },
			wantKind: validation.ErrTypeMismatch,
			wantPath: "tags[1]",
			wantErr:  "array elements must not be null, got null",
		},
		{
			name:     "constraint violation inside array",
			mutate:   func(in map[string]any) { in["tags"] = []any{""} },
			wantKind: validation.ErrConstraintViolation,
			wantPath: "tags[0]",
			wantErr:  "must not be empty",
		},
		{
			name: "failure inside nested sequence entity",
			mutate: func(in map[string]any) {
				in["parts"] = []any{
					map[string]any{"id": "P-1"},
					map[string]any{"id": "P-2", "size": "big"},
				}
			},
			wantKind: validation.ErrTypeMismatch,
			wantPath: "parts[1].size",
			wantErr:  "expected an integer, got string",
		},
		{
			name:     "scalar where entity expected",
			mutate:   func(in map[string]any) { in["main"] = "P-0" },
			wantKind: validation.ErrTypeMismatch,
			wantPath: "main",
			wantErr:  "Part must be a JSON object, got string",
		},
		{
			name:     "scalar where array expected",
			mutate:   func(in map[string]any) { in["tags"] = "alpha" },
			wantKind: validation.ErrTypeMismatch,
			wantPath: "tags",
			wantErr:  "expected an array, got string",
		},
		{
			name:     "array where free-form object expected",
			mutate:   func(in map[string]any) { in["extra"] = []any{"vendor"} },
			wantKind: validation.ErrTypeMismatch,
			wantPath: "extra",
			wantErr:  "expected an object, got array",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := widgetInput()
			tt.mutate(in)

			_, err := Parse(widgetDef, in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantKind)
			assert.Contains(t, err.Error(), tt.wantErr)

			var verr *validation.Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantPath, verr.Path)
		})
	}
}

func TestParse_RootMustBeObject(t *testing.T) {
	_, err := Parse(widgetDef, []any{"not", "an", "object"})
	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrTypeMismatch)
	assert.Equal(t, "type mismatch: Widget must be a JSON object, got array", err.Error())
}

func TestParse_StopsAtFirstFailure(t *testing.T) {
	in := widgetInput()
	delete(in, "id")
	in["grade"] = "bogus"

	// Fields fail in declared order; id comes before grade.
	_, err := Parse(widgetDef, in)
	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrMissingRequiredField)
}

func TestParse_IntegerForms(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    int
		wantErr string
	}{
		{name: "json.Number", value: json.Number("42"), want: 42},
		{name: "int", value: 42, want: 42},
		{name: "int64", value: int64(42), want: 42},
		{name: "integral float64", value: float64(42), want: 42},
		{name: "negative", value: json.Number("-7"), want: -7},
		{name: "fractional json.Number", value: json.Number("4.2"), wantErr: "expected an integer, got number"},
		{name: "fractional float64", value: 4.2, wantErr: "expected an integer, got number"},
		{name: "boolean", value: true, wantErr: "expected an integer, got boolean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := widgetInput()
			in["count"] = tt.value

			e, err := Parse(widgetDef, in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			got, ok := e.(*widget).Count.Value()
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDepth(t *testing.T) {
	// With the limit at zero the root still parses but no nested entity
	// may be entered. Entities inside a sequence sit one level below the
	// sequence itself, so parts[0] is the first to trip the guard.
	_, err := ParseDepth(widgetDef, widgetInput(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "nesting exceeds the depth limit of 0")

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "parts[0]", verr.Path)

	_, err = ParseDepth(widgetDef, widgetInput(), 1)
	require.Error(t, err)

	// Two levels cover the whole fixture.
	_, err = ParseDepth(widgetDef, widgetInput(), 2)
	assert.NoError(t, err)
}
