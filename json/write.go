// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package json

import (
	"bytes"
	"encoding/json"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/dacolabs/spdx/schema"
	"github.com/dacolabs/spdx/spdx23"
)

// WriteOption adjusts Write's output.
type WriteOption func(*writeOptions)

type writeOptions struct {
	indent     string
	escapeHTML bool
}

// Indent sets the indentation step. The default is two spaces;
// Indent("") selects compact single-line output.
func Indent(s string) WriteOption {
	return func(o *writeOptions) { o.indent = s }
}

// EscapeHTML controls whether <, >, and & inside strings are replaced
// by their unicode escapes for safe embedding in HTML. It is on by
// default, matching encoding/json.
func EscapeHTML(on bool) WriteOption {
	return func(o *writeOptions) { o.escapeHTML = on }
}

// Write serializes doc to w, fields in definition order, unset fields
// omitted, terminated by a newline.
func Write(doc *spdx23.Document, w io.Writer, opts ...WriteOption) error {
	o := writeOptions{indent: "  ", escapeHTML: true}
	for _, opt := range opts {
		opt(&o)
	}
	e := newEncoder(o.escapeHTML)
	if err := e.value(doc.Emit()); err != nil {
		return err
	}
	out := e.buf.Bytes()
	if o.indent != "" {
		var dst bytes.Buffer
		if err := json.Indent(&dst, out, "", o.indent); err != nil {
			return err
		}
		out = dst.Bytes()
	}
	out = append(out, '\n')
	_, err := w.Write(out)
	return err
}

// WriteFile serializes doc to the file at path, creating or truncating
// it.
func WriteFile(path string, doc *spdx23.Document, opts ...WriteOption) error {
	var buf bytes.Buffer
	if err := Write(doc, &buf, opts...); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// encoder renders the emitted value tree compactly. Scalars go through a
// single reused encoding/json encoder so the escape setting applies;
// object member order is taken from the tree, never from map iteration.
type encoder struct {
	buf     bytes.Buffer
	scratch bytes.Buffer
	enc     *json.Encoder
}

func newEncoder(escapeHTML bool) *encoder {
	e := &encoder{}
	e.enc = json.NewEncoder(&e.scratch)
	e.enc.SetEscapeHTML(escapeHTML)
	return e
}

func (e *encoder) value(v any) error {
	switch t := v.(type) {
	case *schema.Object:
		return e.object(t)
	case []any:
		return e.array(t)
	case map[string]any:
		return e.freeform(t)
	default:
		return e.scalar(v)
	}
}

func (e *encoder) object(o *schema.Object) error {
	e.buf.WriteByte('{')
	for i, m := range o.Members {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		if err := e.member(m.Name, m.Value); err != nil {
			return err
		}
	}
	e.buf.WriteByte('}')
	return nil
}

// freeform renders a schema-free object with its keys sorted, the one
// place the wire order is not definition-driven.
func (e *encoder) freeform(m map[string]any) error {
	e.buf.WriteByte('{')
	for i, k := range slices.Sorted(maps.Keys(m)) {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		if err := e.member(k, m[k]); err != nil {
			return err
		}
	}
	e.buf.WriteByte('}')
	return nil
}

func (e *encoder) member(name string, v any) error {
	if err := e.scalar(name); err != nil {
		return err
	}
	e.buf.WriteByte(':')
	return e.value(v)
}

func (e *encoder) array(a []any) error {
	e.buf.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		if err := e.value(v); err != nil {
			return err
		}
	}
	e.buf.WriteByte(']')
	return nil
}

func (e *encoder) scalar(v any) error {
	e.scratch.Reset()
	if err := e.enc.Encode(v); err != nil {
		return err
	}
	e.buf.Write(bytes.TrimRight(e.scratch.Bytes(), "\n"))
	return nil
}
