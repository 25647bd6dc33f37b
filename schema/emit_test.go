// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmit_MemberOrder(t *testing.T) {
	e, err := Parse(widgetDef, widgetInput())
	require.NoError(t, err)

	obj := Emit(widgetDef, e, Options{})

	// Member order is the declared field order, never input order or
	// alphabetical order.
	assert.Equal(t, []string{
		"id", "grade", "count", "active", "note", "tags", "parts", "main", "extra",
	}, obj.Names())
}

func TestEmit_OmitsUnset(t *testing.T) {
	e, err := Parse(widgetDef, map[string]any{
		"id":    "W-2",
		"grade": "ALPHA",
		"parts": []any{map[string]any{"id": "P-1"}},
	})
	require.NoError(t, err)

	obj := Emit(widgetDef, e, Options{})
	assert.Equal(t, []string{"id", "grade", "parts"}, obj.Names())

	_, ok := obj.Get("count")
	assert.False(t, ok)
}

func TestEmit_NullSurvives(t *testing.T) {
	e, err := Parse(widgetDef, widgetInput())
	require.NoError(t, err)

	// note arrived as an explicit null and must leave as one.
	obj := Emit(widgetDef, e, Options{})
	v, ok := obj.Get("note")
	require.True(t, ok)
	assert.Nil(t, v)
}

func TestEmit_IncludeUnset(t *testing.T) {
	e, err := Parse(widgetDef, map[string]any{
		"id":    "W-2",
		"grade": "ALPHA",
		"parts": []any{map[string]any{"id": "P-1"}},
	})
	require.NoError(t, err)

	obj := Emit(widgetDef, e, Options{IncludeUnset: true})
	require.Len(t, obj.Members, len(widgetDef.Fields))

	v, ok := obj.Get("count")
	require.True(t, ok)
	assert.Nil(t, v)
}

func TestEmit_LogicalNames(t *testing.T) {
	e, err := Parse(widgetDef, widgetInput())
	require.NoError(t, err)

	obj := Emit(widgetDef, e, Options{LogicalNames: true})
	assert.Equal(t, []string{
		"ID", "Grade", "Count", "Active", "Note", "Tags", "Parts", "Main", "Extra",
	}, obj.Names())
}

func TestEmit_NestedShapes(t *testing.T) {
	e, err := Parse(widgetDef, widgetInput())
	require.NoError(t, err)

	obj := Emit(widgetDef, e, Options{})

	// Check nested entities come out as ordered objects
	main, ok := obj.Get("main")
	require.True(t, ok)
	mainObj, ok := main.(*Object)
	require.True(t, ok)
	id, ok := mainObj.Get("id")
	require.True(t, ok)
	assert.Equal(t, "P-0", id)

	// Check sequence elements keep their order and shape
	parts, ok := obj.Get("parts")
	require.True(t, ok)
	items, ok := parts.([]any)
	require.True(t, ok)
	require.Len(t, items, 2)

	first := items[0].(*Object)
	assert.Equal(t, []string{"id", "size"}, first.Names())
	size, ok := first.Get("size")
	require.True(t, ok)
	assert.Equal(t, 10, size)

	second := items[1].(*Object)
	assert.Equal(t, []string{"id"}, second.Names())

	// Check the free-form object passes through untouched
	extra, ok := obj.Get("extra")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"vendor": "acme"}, extra)
}

func TestObject_Get_Missing(t *testing.T) {
	obj := &Object{Members: []Member{{Name: "a", Value: 1}}}
	_, ok := obj.Get("b")
	assert.False(t, ok)
}

func TestObject_MarshalJSON(t *testing.T) {
	// Marshalling preserves member order even against alphabetical order.
	obj := &Object{Members: []Member{
		{Name: "zeta", Value: 1},
		{Name: "alpha", Value: "x"},
		{Name: "mid", Value: nil},
	}}

	data, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":1,"alpha":"x","mid":null}`, string(data))
}

func TestEmit_Golden(t *testing.T) {
	e, err := Parse(widgetDef, widgetInput())
	require.NoError(t, err)

	data, err := json.Marshal(Emit(widgetDef, e, Options{}))
	require.NoError(t, err)

	want := `{"id":"W-1","grade":"BETA","count":3,"active":true,"note":null,` +
		`"tags":["alpha","tooling"],"parts":[{"id":"P-1","size":10},{"id":"P-2"}],` +
		`"main":{"id":"P-0"},"extra":{"vendor":"acme"}}`
	assert.Equal(t, want, string(data))
}
