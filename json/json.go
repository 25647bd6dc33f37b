// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package json reads and writes SPDX documents in their JSON wire form.
//
// Read accepts any document whose declared spdxVersion is registered and
// returns the typed SPDX 2.3 graph. Write emits only fields that are
// present, members ordered by the schema definition, so output is
// deterministic byte for byte.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dacolabs/spdx/schema"
	"github.com/dacolabs/spdx/spdx23"
	"github.com/dacolabs/spdx/validation"
)

// Read decodes one JSON value from r and parses it into a document. Input
// that is not valid JSON, or that carries bytes after the top-level
// value, fails with ErrMalformedInput.
func Read(r io.Reader) (*spdx23.Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &validation.Error{
			Kind:   validation.ErrMalformedInput,
			Detail: "invalid JSON",
			Err:    err,
		}
	}
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, &validation.Error{
			Kind:   validation.ErrMalformedInput,
			Detail: "trailing data after top-level value",
		}
	}
	if err := checkVersion(v); err != nil {
		return nil, err
	}
	return spdx23.ParseDocument(v)
}

// ReadFile reads the JSON document at path.
func ReadFile(path string) (*spdx23.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck
	return Read(f)
}

// ReadBytes reads a JSON document held in memory.
func ReadBytes(data []byte) (*spdx23.Document, error) {
	return Read(bytes.NewReader(data))
}

// checkVersion rejects documents declaring a version no registered schema
// covers. A missing or non-string spdxVersion is left for the parse
// engine, which reports it against the document definition.
func checkVersion(v any) error {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	ver, ok := obj["spdxVersion"].(string)
	if !ok {
		return nil
	}
	if _, ok := schema.Lookup(ver); ok {
		return nil
	}
	return &validation.Error{
		Kind:   validation.ErrUnsupportedSchemaVersion,
		Path:   "spdxVersion",
		Value:  ver,
		Detail: fmt.Sprintf("supported versions: %s", strings.Join(schema.Versions(), ", ")),
	}
}
