package main

// Shared helpers for rdfopts CLI commands.

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	rdfopts "github.com/goliatone/go-rdf-options"
)

// optionView is the JSON shape of one option.
type optionView struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	URI   string   `json:"uri"`
	Type  string   `json:"type"`
	Areas []string `json:"areas"`
	Label string   `json:"label"`
}

func viewOf(d rdfopts.Descriptor) optionView {
	return optionView{
		ID:    int(d.ID),
		Name:  d.Name,
		URI:   d.URI(),
		Type:  d.ValueType.String(),
		Areas: d.Area.Names(),
		Label: d.Label,
	}
}

// resolveOption accepts a numeric identity, a canonical URI or a short name.
func resolveOption(arg string) (rdfopts.Descriptor, error) {
	arg = strings.TrimSpace(arg)
	var id rdfopts.ID
	switch {
	case strings.HasPrefix(arg, rdfopts.URIPrefix):
		id = rdfopts.OptionFromURIString(arg)
	default:
		if n, err := strconv.Atoi(arg); err == nil {
			id = rdfopts.ID(n)
		} else {
			id = rdfopts.LookupName(arg)
		}
	}
	d, ok := rdfopts.Lookup(id)
	if !ok {
		return rdfopts.Descriptor{}, userError("unknown option %q", arg)
	}
	return d, nil
}

func writeJSON(cmd *cobra.Command, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return systemError("marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func writeOptionTable(out io.Writer, descriptors []rdfopts.Descriptor) error {
	if len(descriptors) == 0 {
		fmt.Fprintln(out, "No options found.")
		return nil
	}
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tAREAS")
	fmt.Fprintln(w, "--\t----\t----\t-----")
	for _, d := range descriptors {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", d.ID, d.Name, d.ValueType, strings.Join(d.Area.Names(), ","))
	}
	if err := w.Flush(); err != nil {
		return systemError("write table: %w", err)
	}
	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Fprintln(out, strings.TrimRight(line, " "))
	}
	fmt.Fprintf(out, "Total: %d option(s)\n", len(descriptors))
	return nil
}

func writeOptions(cmd *cobra.Command, output string, descriptors []rdfopts.Descriptor) error {
	if output == "json" {
		views := make([]optionView, 0, len(descriptors))
		for _, d := range descriptors {
			views = append(views, viewOf(d))
		}
		return writeJSON(cmd, views)
	}
	return writeOptionTable(cmd.OutOrStdout(), descriptors)
}
