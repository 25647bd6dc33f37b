// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package spdx23 models SPDX 2.3 documents in their JSON wire format.
//
// The entity structs carry every field of the 2.3 schema. Optional scalar
// fields are spdx.Opt values so that unset, explicit null, and a real
// value stay distinguishable; optional collections use nil for unset and
// an empty slice for explicitly empty. ParseDocument validates a generic
// JSON value into a Document, aborting at the first failure with a
// *validation.Error locating it. Emit renders a Document back as an
// ordered JSON value whose member order is fixed by the entity
// definitions, so output bytes are deterministic.
//
// Reading and writing documents over streams lives in the json and yaml
// packages; this package works on in-memory values only.
package spdx23

import (
	"fmt"
	"iter"

	"github.com/dacolabs/spdx/schema"
	"github.com/dacolabs/spdx/validation"
)

// Version is the schema version string this package implements.
const Version = "SPDX-2.3"

var documentSchema = &schema.Schema{Version: Version, Root: documentDef}

func init() {
	schema.Register(documentSchema)
}

// Schema returns the registered SPDX 2.3 schema. Its root definition is
// the Document definition.
func Schema() *schema.Schema { return documentSchema }

// ParseDocument builds a Document from a generic JSON value. The
// declared spdxVersion is checked first: a document declaring any other
// version fails with ErrUnsupportedSchemaVersion before field validation
// begins. Unknown keys anywhere in the input are ignored.
func ParseDocument(v any) (*Document, error) {
	if obj, ok := v.(map[string]any); ok {
		if ver, ok := obj["spdxVersion"].(string); ok && ver != Version {
			return nil, &validation.Error{
				Kind:   validation.ErrUnsupportedSchemaVersion,
				Path:   "spdxVersion",
				Value:  ver,
				Detail: fmt.Sprintf("this package reads %s documents", Version),
			}
		}
	}
	e, err := schema.Parse(documentDef, v)
	if err != nil {
		return nil, err
	}
	return e.(*Document), nil
}

// EmitOption adjusts how a Document is emitted.
type EmitOption func(*schema.Options)

// IncludeUnset emits unset optional fields as explicit nulls instead of
// omitting them.
func IncludeUnset() EmitOption {
	return func(o *schema.Options) { o.IncludeUnset = true }
}

// LogicalNames emits Go field names instead of wire aliases.
func LogicalNames() EmitOption {
	return func(o *schema.Options) { o.LogicalNames = true }
}

// Emit renders the document as an ordered JSON value. By default unset
// fields are omitted and member names are the wire aliases; emission
// order is always the schema's declared field order.
func (d *Document) Emit(opts ...EmitOption) *schema.Object {
	var o schema.Options
	for _, opt := range opts {
		opt(&o)
	}
	return schema.Emit(documentDef, d, o)
}

// Validate re-runs every schema check over the document graph. Parse
// output always validates; call this after building or mutating a
// Document directly.
func (d *Document) Validate() error {
	return schema.Validate(documentDef, d)
}

// ElementIDs iterates the SPDXIDs declared in the document: the document
// itself, then packages, files, and snippets in order. References are
// weak, so callers wanting linkage checks can collect these themselves.
func (d *Document) ElementIDs() iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield(d.SPDXID) {
			return
		}
		for i := range d.Packages {
			if !yield(d.Packages[i].SPDXID) {
				return
			}
		}
		for i := range d.Files {
			if !yield(d.Files[i].SPDXID) {
				return
			}
		}
		for i := range d.Snippets {
			if !yield(d.Snippets[i].SPDXID) {
				return
			}
		}
	}
}
