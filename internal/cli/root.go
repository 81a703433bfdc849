// Package cli implements pathwaysctl, the operator command line for the
// lesson catalog and lesson content.
//
// Configuration precedence, highest first:
//
//  1. Command-line flags (--content-dir, --format, ...)
//  2. Environment variables with the PATHWAYS_ prefix (PATHWAYS_CONTENT_DIR)
//  3. A config file given with --config, or .pathways.yml in the working directory
//  4. Defaults
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/dalemusser/penguinpathways/internal/app/resources"
	"github.com/dalemusser/penguinpathways/internal/app/system/clipboard"
	"github.com/dalemusser/penguinpathways/internal/app/system/content"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Options are the dependencies a command tree runs against. Zero values fall
// back to the process defaults.
type Options struct {
	Out       io.Writer
	Err       io.Writer
	Clipboard clipboard.Clipboard
	Lessons   fs.FS // overrides content_dir and the embedded lessons
}

type app struct {
	opts Options
	v    *viper.Viper
	log  *zap.Logger
}

// NewRootCommand builds the pathwaysctl command tree.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.SystemClipboard{}
	}
	a := &app{opts: opts, v: viper.New(), log: zap.NewNop()}

	var cfgFile string
	root := &cobra.Command{
		Use:   "pathwaysctl",
		Short: "Inspect and validate the Penguin Pathways lesson catalog",
		Long: `pathwaysctl inspects the lesson catalog and the lesson content that
backs it.

Quick Start:
  pathwaysctl catalog list            List every chapter
  pathwaysctl catalog check           Validate routes and lesson coverage
  pathwaysctl examples /commands      Show copyable commands for a lesson
  pathwaysctl copy /commands 1        Copy the first command to the clipboard
  pathwaysctl toggle /labs            Show the fullscreen toggle target`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cfgFile)
		},
	}
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .pathways.yml)")
	root.PersistentFlags().String("content-dir", "", "directory of lesson markdown files (blank uses the embedded lessons)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log diagnostics to stderr")
	_ = a.v.BindPFlag("content_dir", root.PersistentFlags().Lookup("content-dir"))
	_ = a.v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	root.AddCommand(
		a.catalogCommand(),
		a.examplesCommand(),
		a.copyCommand(),
		a.toggleCommand(),
	)
	return root
}

// Execute runs pathwaysctl against the process environment.
func Execute() error {
	return NewRootCommand(Options{}).Execute()
}

func (a *app) initConfig(cfgFile string) error {
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".pathways")
	}

	a.v.SetEnvPrefix("PATHWAYS")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	// A missing default config file is fine; an explicit one must load.
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if a.v.GetBool("verbose") {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		a.log = logger
	}
	return nil
}

// library loads lesson content from the configured source.
func (a *app) library() (*content.Library, error) {
	fsys := a.opts.Lessons
	if fsys == nil {
		if dir := a.v.GetString("content_dir"); dir != "" {
			fsys = os.DirFS(dir)
		} else {
			fsys = resources.Lessons()
		}
	}
	return content.NewLibrary(fsys, a.log)
}
