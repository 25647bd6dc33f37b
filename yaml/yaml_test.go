// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package yaml

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/spdx"
	"github.com/dacolabs/spdx/spdx23"
	"github.com/dacolabs/spdx/validation"
)

// minimalYAML leaves the timestamp unquoted, so the YAML resolver hands
// Read a time value rather than a string.
const minimalYAML = `spdxVersion: SPDX-2.3
dataLicense: CC0-1.0
SPDXID: SPDXRef-DOCUMENT
name: zlib-1.3
creationInfo:
  created: 2023-04-05T18:30:22Z
  creators:
    - "Tool: scancode-toolkit 32.0.0"
packages:
  - SPDXID: SPDXRef-Package-zlib
    name: zlib
    downloadLocation: NOASSERTION
    versionInfo: "1.3"
documentDescribes:
  - SPDXRef-Package-zlib
`

func demoDocument(t *testing.T) *spdx23.Document {
	t.Helper()

	info, err := spdx23.NewCreationInfo("2023-04-05T18:30:22Z", "Tool: scancode-toolkit 32.0.0")
	require.NoError(t, err)
	doc, err := spdx23.NewDocument("zlib-1.3", info)
	require.NoError(t, err)
	doc.DocumentNamespace = spdx.Some("https://spdx.example.org/zlib-1.3")

	pkg, err := spdx23.NewPackage("SPDXRef-Package-zlib", "zlib", "https://zlib.net/zlib-1.3.tar.gz")
	require.NoError(t, err)
	pkg.VersionInfo = spdx.Some("1.3")
	pkg.FilesAnalyzed = spdx.Some(false)
	sum, err := spdx23.NewChecksum(spdx23.AlgorithmSHA256, "ff0ba4c292013dbc27530b3a81e1f9a813cd39de01ca5e0f8bf355702efa593e")
	require.NoError(t, err)
	pkg.Checksums = append(pkg.Checksums, sum)
	doc.Packages = append(doc.Packages, pkg)

	rel, err := spdx23.NewRelationship("SPDXRef-DOCUMENT", spdx23.RelationshipDescribes, "SPDXRef-Package-zlib")
	require.NoError(t, err)
	doc.Relationships = append(doc.Relationships, rel)
	doc.DocumentDescribes = []string{"SPDXRef-Package-zlib"}
	return doc
}

func TestReadBytes(t *testing.T) {
	doc, err := ReadBytes([]byte(minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, "SPDX-2.3", doc.SPDXVersion)
	assert.Equal(t, "zlib-1.3", doc.Name)

	// Check the unquoted timestamp arrived as its RFC 3339 text.
	assert.Equal(t, "2023-04-05T18:30:22Z", doc.CreationInfo.Created)
	assert.Equal(t, []string{"Tool: scancode-toolkit 32.0.0"}, doc.CreationInfo.Creators)

	require.Len(t, doc.Packages, 1)
	assert.Equal(t, "zlib", doc.Packages[0].Name)
	assert.Equal(t, "1.3", doc.Packages[0].VersionInfo.Or(""))
	assert.Equal(t, []string{"SPDXRef-Package-zlib"}, doc.DocumentDescribes)
}

func TestRead_UnquotedVersionIsANumber(t *testing.T) {
	// Without quotes the YAML resolver reads 1.3 as a float, and the
	// parser reports it the same way it would a JSON number.
	in := strings.Replace(minimalYAML, `versionInfo: "1.3"`, `versionInfo: 1.3`, 1)

	_, err := ReadBytes([]byte(in))
	require.ErrorIs(t, err, validation.ErrTypeMismatch)
	assert.ErrorContains(t, err, "expected a string, got number")

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "packages[0].versionInfo", verr.Path)
}

func TestRead_InvalidYAML(t *testing.T) {
	_, err := ReadBytes([]byte("creationInfo: [oops"))
	require.ErrorIs(t, err, validation.ErrMalformedInput)
	assert.ErrorContains(t, err, "invalid YAML")
}

func TestRead_MultipleDocuments(t *testing.T) {
	in := minimalYAML + "---\nname: second\n"

	_, err := ReadBytes([]byte(in))
	require.ErrorIs(t, err, validation.ErrMalformedInput)
	assert.ErrorContains(t, err, "multiple YAML documents in stream")
}

func TestRead_UnsupportedVersion(t *testing.T) {
	in := strings.Replace(minimalYAML, "SPDX-2.3", "SPDX-2.2", 1)

	_, err := ReadBytes([]byte(in))
	require.ErrorIs(t, err, validation.ErrUnsupportedSchemaVersion)
	assert.ErrorContains(t, err, "this package reads SPDX-2.3 documents")
}

func TestWrite_QuotesAmbiguousScalars(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(demoDocument(t), &buf))
	out := buf.String()

	// Plain scalars stay plain.
	assert.Contains(t, out, "spdxVersion: SPDX-2.3\n")
	assert.Contains(t, out, "filesAnalyzed: false\n")

	// Scalars the YAML resolver would retype come out quoted.
	assert.Contains(t, out, `created: "2023-04-05T18:30:22Z"`)
	assert.Contains(t, out, `versionInfo: "1.3"`)
	assert.NotContains(t, out, "!!")
}

func TestWrite_RoundTrip(t *testing.T) {
	doc := demoDocument(t)

	var buf bytes.Buffer
	require.NoError(t, Write(doc, &buf))

	got, err := ReadBytes(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestWriteFile_ReadFile(t *testing.T) {
	doc := demoDocument(t)
	path := filepath.Join(t.TempDir(), "zlib.spdx.yaml")

	require.NoError(t, WriteFile(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "spdxVersion: SPDX-2.3")

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
