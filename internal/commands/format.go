// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dacolabs/spdx/json"
	"github.com/dacolabs/spdx/spdx23"
	"github.com/dacolabs/spdx/yaml"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// detectFormat infers a document format from a file extension.
func detectFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return "", fmt.Errorf("cannot infer format of %q (expected .json, .yaml, or .yml)", filepath.Base(path))
}

// readDocument reads the document at path. An empty format means infer
// from the extension.
func readDocument(path, format string) (*spdx23.Document, error) {
	if format == "" {
		f, err := detectFormat(path)
		if err != nil {
			return nil, err
		}
		format = f
	}
	switch format {
	case formatJSON:
		return json.ReadFile(path)
	case formatYAML:
		return yaml.ReadFile(path)
	}
	return nil, fmt.Errorf("unsupported format %q (expected json or yaml)", format)
}

// writeDocument writes doc to path in the given format, compact JSON if
// requested.
func writeDocument(path, format string, doc *spdx23.Document, compact bool) error {
	switch format {
	case formatJSON:
		if compact {
			return json.WriteFile(path, doc, json.Indent(""))
		}
		return json.WriteFile(path, doc)
	case formatYAML:
		return yaml.WriteFile(path, doc)
	}
	return fmt.Errorf("unsupported format %q (expected json or yaml)", format)
}
