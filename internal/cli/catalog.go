package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dalemusser/penguinpathways/internal/app/system/catalog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var formats = []string{"table", "json", "yaml"}

// chapterRow is the machine-readable form of a catalog entry.
type chapterRow struct {
	Chapter       string   `json:"chapter" yaml:"chapter"`
	Title         string   `json:"title" yaml:"title"`
	Route         string   `json:"route" yaml:"route"`
	Icon          string   `json:"icon" yaml:"icon"`
	Level         string   `json:"level,omitempty" yaml:"level,omitempty"`
	Featured      bool     `json:"featured,omitempty" yaml:"featured,omitempty"`
	EstimatedTime string   `json:"estimated_time,omitempty" yaml:"estimated_time,omitempty"`
	Topics        []string `json:"topics,omitempty" yaml:"topics,omitempty"`
}

func (a *app) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "catalog",
		Aliases: []string{"c"},
		Short:   "Inspect the lesson catalog",
	}

	var format string
	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "List every chapter in sidebar order",
		Long: `List every chapter in sidebar order.

Examples:
  pathwaysctl catalog list            # table
  pathwaysctl catalog list -f json    # JSON
  pathwaysctl catalog list -f yaml    # YAML`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeChapters(cmd.OutOrStdout(), format, catalog.All())
		},
	}
	list.Flags().StringVarP(&format, "format", "f", "table", "output format: "+strings.Join(formats, ", "))

	check := &cobra.Command{
		Use:   "check",
		Short: "Validate catalog routes and lesson coverage",
		Long: `Validate the catalog and the lesson content.

Duplicate routes listed as known (the shared /linux route) are reported as
warnings. Any other duplicate, a malformed entry, or a route without a lesson
fails the check.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd)
		},
	}

	cmd.AddCommand(list, check)
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	report, err := catalog.Check(catalog.All())
	for _, d := range report.Warnings() {
		fmt.Fprintf(out, "warning: %s is shared by %s\n", d.Route, strings.Join(d.Titles, " and "))
	}
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	lib, err := a.library()
	if err != nil {
		return fmt.Errorf("load lessons: %w", err)
	}
	if err := lib.Check(catalog.Routes()); err != nil {
		return err
	}

	s := catalog.Stats(catalog.All())
	fmt.Fprintf(out, "ok: %d chapters, %d routes, %d lessons, %d topics\n",
		report.Entries, len(catalog.Routes()), len(lib.Routes()), s.Topics)
	return nil
}

func writeChapters(w io.Writer, format string, entries []catalog.LessonDescriptor) error {
	rows := make([]chapterRow, len(entries))
	for i, d := range entries {
		rows[i] = chapterRow{
			Chapter:       catalog.ChapterLabel(i),
			Title:         d.Title,
			Route:         d.Route,
			Icon:          d.Icon.Glyph(),
			Featured:      d.Featured,
			EstimatedTime: d.EstimatedTime,
			Topics:        d.Topics,
		}
		if d.HasLevel() {
			rows[i].Level = d.Level.String()
		}
	}

	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(rows)
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CHAPTER\tTITLE\tROUTE\tLEVEL\tTIME")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Chapter, r.Title, r.Route, dash(r.Level), dash(r.EstimatedTime))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported format %q (want one of %s)", format, strings.Join(formats, ", "))
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
