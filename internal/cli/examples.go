package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/dalemusser/penguinpathways/internal/app/system/clipboard"
	"github.com/dalemusser/penguinpathways/internal/app/system/content"
	"github.com/dalemusser/penguinpathways/internal/app/system/viewstate"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (a *app) examplesCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:     "examples <route>",
		Aliases: []string{"ex"},
		Short:   "List the copyable commands of a lesson",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			examples, err := a.examples(args[0])
			if err != nil {
				return err
			}
			return writeExamples(cmd.OutOrStdout(), format, examples)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: "+strings.Join(formats, ", "))
	return cmd
}

func (a *app) copyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <route> <n>",
		Short: "Copy the nth command of a lesson to the clipboard",
		Long: `Copy the nth command (1-based, as numbered by "examples") of a lesson to
the system clipboard.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			examples, err := a.examples(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 || n > len(examples) {
				return fmt.Errorf("%s has %d examples; %q is not one of them", args[0], len(examples), args[1])
			}

			text := examples[n-1].Text
			copier := clipboard.NewCopier(a.opts.Clipboard, 0, a.log)
			if !copier.Copy(text) {
				fmt.Fprintf(cmd.ErrOrStderr(), "could not copy; the command is:\n%s\n", text)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied: %s\n", text)
			return nil
		},
	}
}

func (a *app) toggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <path>",
		Short: "Print the URL the fullscreen toggle leads to from path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := parseLocation(args[0])
			if err != nil {
				return err
			}
			after := viewstate.State{SidebarHidden: !viewstate.FromURL(loc).SidebarHidden}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (sidebar %s)\n", viewstate.ToggleURL(loc), sidebarLabel(after))
			return nil
		},
	}
}

func (a *app) examples(route string) ([]content.Example, error) {
	lib, err := a.library()
	if err != nil {
		return nil, fmt.Errorf("load lessons: %w", err)
	}
	return lib.Examples(route)
}

func writeExamples(w io.Writer, format string, examples []content.Example) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(examples)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(examples)
	case "table":
		for i, ex := range examples {
			if _, err := fmt.Fprintf(w, "%2d  %s\n", i+1, ex.Text); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want one of %s)", format, strings.Join(formats, ", "))
	}
}

func sidebarLabel(s viewstate.State) string {
	if s.SidebarHidden {
		return "hidden"
	}
	return "visible"
}

// parseLocation accepts a site path such as /labs?fullscreen=true.
func parseLocation(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", raw, err)
	}
	if u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return nil, fmt.Errorf("%q is not a site path", raw)
	}
	return u, nil
}
