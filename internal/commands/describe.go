// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/dacolabs/spdx/internal/prompts"
	"github.com/dacolabs/spdx/spdx23"
	"github.com/spf13/cobra"
)

func registerDescribeCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "describe FILE",
		Short: "Show a summary of an SPDX document",
		Long: `Show a summary of a valid SPDX document: document metadata,
all packages and files it declares, and its relationship counts.`,
		Example: `  # Describe a document
  spdx describe sbom.spdx.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(args[0])
		},
	}
	parent.AddCommand(cmd)
}

func runDescribe(path string) error {
	doc, err := readDocument(path, "")
	if err != nil {
		return err
	}

	fields := []prompts.ResultField{
		{Label: "Name", Value: doc.Name},
		{Label: "Version", Value: doc.SPDXVersion},
		{Label: "Data license", Value: doc.DataLicense},
	}
	if ns, ok := doc.DocumentNamespace.Value(); ok {
		fields = append(fields, prompts.ResultField{Label: "Namespace", Value: ns})
	}
	if doc.CreationInfo != nil {
		fields = append(fields,
			prompts.ResultField{Label: "Created", Value: doc.CreationInfo.Created},
			prompts.ResultField{Label: "Creators", Value: strings.Join(doc.CreationInfo.Creators, ", ")},
		)
	}
	prompts.PrintResult(fields, "")

	if err := printPackages(doc.Packages); err != nil {
		return err
	}
	if err := printFiles(doc.Files); err != nil {
		return err
	}
	printRelationships(doc.Relationships)
	return nil
}

func printPackages(packages []spdx23.Package) error {
	prompts.PrintResult([]prompts.ResultField{{Label: "Packages", Value: fmt.Sprint(len(packages))}}, "")
	if len(packages) == 0 {
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "SPDXID\tNAME\tVERSION\tLICENSE")
	for _, p := range packages {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			p.SPDXID, truncate(p.Name), p.VersionInfo.Or("-"), p.LicenseConcluded.Or("-"))
	}
	return w.Flush()
}

func printFiles(files []spdx23.File) error {
	prompts.PrintResult([]prompts.ResultField{{Label: "Files", Value: fmt.Sprint(len(files))}}, "")
	if len(files) == 0 {
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "SPDXID\tNAME\tCHECKSUMS")
	for _, f := range files {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\n", f.SPDXID, truncate(f.FileName), len(f.Checksums))
	}
	return w.Flush()
}

func printRelationships(relationships []spdx23.Relationship) {
	prompts.PrintResult([]prompts.ResultField{{Label: "Relationships", Value: fmt.Sprint(len(relationships))}}, "")
	if len(relationships) == 0 {
		return
	}

	counts := make(map[string]int)
	for _, r := range relationships {
		counts[string(r.Type)]++
	}
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)

	for _, t := range types {
		fmt.Printf("  %s: %d\n", t, counts[t])
	}
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) > 40 {
		return string([]rune(s)[:37]) + "..."
	}
	if s == "" {
		return "-"
	}
	return s
}
