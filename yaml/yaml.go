// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package yaml reads and writes SPDX documents as YAML.
//
// The wire model is the JSON one: the same fields, the same presence
// rules, the same field order on output. Reading normalizes YAML's
// richer scalar space (timestamps, non-string keys) back into the
// generic value tree the parse engine accepts.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dacolabs/spdx/spdx23"
	"github.com/dacolabs/spdx/validation"
)

// Read decodes one YAML document from r and parses it. Streams holding
// more than one document fail with ErrMalformedInput.
func Read(r io.Reader) (*spdx23.Document, error) {
	dec := yaml.NewDecoder(r)
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &validation.Error{
			Kind:   validation.ErrMalformedInput,
			Detail: "invalid YAML",
			Err:    err,
		}
	}
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, &validation.Error{
			Kind:   validation.ErrMalformedInput,
			Detail: "multiple YAML documents in stream",
		}
	}
	return spdx23.ParseDocument(normalize(v))
}

// ReadFile reads the YAML document at path.
func ReadFile(path string) (*spdx23.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck
	return Read(f)
}

// ReadBytes reads a YAML document held in memory.
func ReadBytes(data []byte) (*spdx23.Document, error) {
	return Read(bytes.NewReader(data))
}

// Write serializes doc to w, fields in definition order, unset fields
// omitted, two-space indent.
func Write(doc *spdx23.Document, w io.Writer) error {
	root, err := node(doc.Emit())
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// WriteFile serializes doc to the file at path, creating or truncating
// it.
func WriteFile(path string, doc *spdx23.Document) error {
	var buf bytes.Buffer
	if err := Write(doc, &buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// normalize rewrites a decoded YAML value tree into the JSON value
// space: timestamps become their RFC 3339 text and mapping keys become
// strings. Values the engines cannot use are left for them to report.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, mv := range t {
			t[k] = normalize(mv)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, mv := range t {
			ks, ok := k.(string)
			if !ok {
				return t
			}
			m[ks] = normalize(mv)
		}
		return m
	case []any:
		for i, ev := range t {
			t[i] = normalize(ev)
		}
		return t
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	default:
		return v
	}
}
