package main

// Apply command validates a settings document against an area.

import (
	"context"
	"fmt"
	"os"
	"sort"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	rdfopts "github.com/goliatone/go-rdf-options"
	"github.com/goliatone/go-rdf-options/pkg/activity"
	"github.com/goliatone/go-rdf-options/pkg/activity/usersink"
	usertypes "github.com/goliatone/go-users/pkg/types"
)

func newApplyCmd(a *app) *cobra.Command {
	var (
		trace bool
		audit bool
		actor string
	)
	cmd := &cobra.Command{
		Use:   "apply <file>",
		Short: "Apply a JSON or YAML settings document to an area",
		Long: `Apply reads a settings document keyed by option name or URI, checks every
entry against --area and prints the resulting values. Nothing is applied
when any entry is invalid.

Example:
  rdfopts apply parser.yaml --area parser
  rdfopts apply writer.json --area xml-writer --trace`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := a.output()
			if err != nil {
				return err
			}
			area, err := a.area(true)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return systemError("read settings: %w", err)
			}

			capture := &activity.CaptureHook{}
			var hooks activity.Hooks
			if trace {
				hooks = append(hooks, capture)
			}
			if audit {
				hooks = append(hooks, usersink.Hook{Sink: jsonLineSink{cmd: cmd}, Source: "rdfopts"})
			}
			world := rdfopts.NewWorld(rdfopts.WithActivityHooks(hooks))
			settings := world.NewSettings(area, rdfopts.WithObjectID(args[0]), rdfopts.WithActorID(actor))

			format := rdfopts.DetectDocumentFormat(args[0])
			if err := settings.ApplyDocument(cmd.Context(), args[0], format, data); err != nil {
				return userError("apply %s: %w", args[0], err)
			}

			if err := writeSnapshot(cmd, output, settings.Snapshot()); err != nil {
				return err
			}
			if trace {
				for _, event := range capture.Snapshot() {
					fmt.Fprintf(cmd.ErrOrStderr(), "trace: %s %s %s %v\n", event.Verb, event.ObjectType, event.ObjectID, event.Metadata["new_value"])
				}
			}
			return nil
		},
	}
	cmd.Flags().String("area", "", "area the document targets (required)")
	cmd.Flags().BoolVar(&trace, "trace", false, "print activity events to stderr")
	cmd.Flags().BoolVar(&audit, "audit", false, "write activity records as JSON lines to stderr")
	cmd.Flags().StringVar(&actor, "actor", "", "actor UUID recorded on activity")
	return cmd
}

func writeSnapshot(cmd *cobra.Command, output string, snapshot map[string]any) error {
	if output == "json" {
		return writeJSON(cmd, snapshot)
	}
	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", name, snapshot[name])
	}
	return nil
}

// jsonLineSink writes go-users activity records to stderr, one per line.
type jsonLineSink struct {
	cmd *cobra.Command
}

func (s jsonLineSink) Log(_ context.Context, record usertypes.ActivityRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.cmd.ErrOrStderr(), string(data))
	return err
}
