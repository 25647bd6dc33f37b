// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schema holds the version-agnostic machinery behind the typed
// SPDX packages: declarative entity definitions, closed enumeration sets,
// value constraints, a schema version registry, and the engines that
// parse generic JSON values into typed graphs and emit typed graphs back
// as ordered JSON values.
//
// A definition is plain data. Field order in a Def is load-bearing: it is
// the emission order, so output is deterministic regardless of input or
// construction order. Defs, enums, and registered schemas are built once
// at package init, never mutated afterwards, and safe for concurrent use.
package schema

import "sort"

// Def describes one entity: its name, a factory for the typed struct, and
// its fields in declared (= emission) order.
type Def struct {
	Name   string
	New    func() any
	Fields []Field
}

// Field describes a single field of an entity definition. Set and Get
// bridge the generic engines to the typed struct: Set stores an
// engine-produced ground value, Get returns the ground value and whether
// the field is present. Ground values are string, bool, int, nil (an
// explicit null), an entity pointer, []any of element ground values, or
// map[string]any for free-form objects.
type Field struct {
	// Name is the logical field name, matching the Go struct field.
	Name string

	// Alias is the wire name used on the JSON boundary and in failure
	// paths. Defaults to Name when empty.
	Alias string

	Required bool
	Value    Value

	Set func(entity, value any)
	Get func(entity any) (value any, present bool)
}

// Wire returns the field's name on the wire.
func (f Field) Wire() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// Kind discriminates the shapes a field value can take.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindConstrained
	KindEnum
	KindNested
	KindSeq
	KindAnyObject
)

// Value describes the shape of a field's JSON value.
type Value struct {
	Kind       Kind
	Constraint Constraint // KindConstrained
	Enum       *Enum      // KindEnum
	Def        *Def       // KindNested
	Elem       *Value     // KindSeq
	MinItems   int        // KindSeq
}

// String declares a plain JSON string. Optional fields of this shape also
// accept an explicit JSON null.
func String() Value { return Value{Kind: KindString} }

// Bool declares a JSON boolean.
func Bool() Value { return Value{Kind: KindBool} }

// Int declares a JSON integral number.
func Int() Value { return Value{Kind: KindInt} }

// Constrained declares a JSON string that must satisfy c.
func Constrained(c Constraint) Value {
	return Value{Kind: KindConstrained, Constraint: c}
}

// EnumOf declares a JSON string that must resolve in e.
func EnumOf(e *Enum) Value { return Value{Kind: KindEnum, Enum: e} }

// Nested declares a JSON object parsed by def.
func Nested(def *Def) Value { return Value{Kind: KindNested, Def: def} }

// SeqOf declares a JSON array of elem-shaped values.
func SeqOf(elem Value) Value {
	return Value{Kind: KindSeq, Elem: &elem}
}

// SeqMin declares a JSON array of elem-shaped values with a minimum
// element count.
func SeqMin(elem Value, min int) Value {
	return Value{Kind: KindSeq, Elem: &elem, MinItems: min}
}

// AnyObject declares an arbitrary JSON object captured verbatim as
// map[string]any.
func AnyObject() Value { return Value{Kind: KindAnyObject} }

// Schema bundles the root entity definition for one document format
// version.
type Schema struct {
	Version string
	Root    *Def
}

var registry = make(map[string]*Schema)

// Register adds a schema version to the process-wide registry. It is
// intended to be called from package init functions; later registrations
// for the same version replace earlier ones.
func Register(s *Schema) {
	registry[s.Version] = s
}

// Lookup returns the schema registered for a version string.
func Lookup(version string) (*Schema, bool) {
	s, ok := registry[version]
	return s, ok
}

// Versions returns the registered version strings in sorted order.
func Versions() []string {
	versions := make([]string, 0, len(registry))
	for v := range registry {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	return versions
}
