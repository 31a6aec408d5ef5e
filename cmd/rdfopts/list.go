package main

// List and show commands browse the option catalog.

import (
	"fmt"

	"github.com/spf13/cobra"

	rdfopts "github.com/goliatone/go-rdf-options"
)

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List options",
		Long: `List prints every option in identity order. Use --area to keep only the
options that apply to one or more areas.

Example:
  rdfopts list
  rdfopts list --area parser
  rdfopts list --area "xml-writer,turtle-writer" -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := a.output()
			if err != nil {
				return err
			}
			area, err := a.area(false)
			if err != nil {
				return err
			}
			var selected []rdfopts.Descriptor
			for _, d := range rdfopts.Descriptors() {
				if area == rdfopts.AreaNone || d.Area.Intersects(area) {
					selected = append(selected, d)
				}
			}
			return writeOptions(cmd, output, selected)
		},
	}
	cmd.Flags().String("area", "", "filter by area (parser, serializer, turtle-writer, xml-writer, xml-reader)")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name|uri|id>",
		Short: "Show one option",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := a.output()
			if err != nil {
				return err
			}
			d, err := resolveOption(args[0])
			if err != nil {
				return err
			}
			if output == "json" {
				return writeJSON(cmd, viewOf(d))
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:    %d\n", d.ID)
			fmt.Fprintf(out, "Name:  %s\n", d.Name)
			fmt.Fprintf(out, "URI:   %s\n", d.URI())
			fmt.Fprintf(out, "Type:  %s\n", d.ValueType)
			fmt.Fprintf(out, "Areas: %s\n", d.Area)
			fmt.Fprintf(out, "Label: %s\n", d.Label)
			return nil
		},
	}
}
