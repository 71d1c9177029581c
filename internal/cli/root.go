// Package cli provides the Cobra command structure for tome.
package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/tomeedit/tome/internal/config"
	"github.com/tomeedit/tome/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootFlags are the persistent flags shared by all subcommands.
type rootFlags struct {
	debug      bool
	configPath string
}

// NewRootCommand creates the root tome command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "tome",
		Short: "Headless document core of the tome editor",
		Long: `tome drives the editor's document core from the command line:
open files through the full load pipeline (encoding detection, BOM handling,
filetype detection), convert between charsets, and search file contents.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
			if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
				logging.Default().SetFormatter(log.LogfmtFormatter)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")

	rootCmd.AddCommand(newInfoCommand(flags))
	rootCmd.AddCommand(newConvertCommand(flags))
	rootCmd.AddCommand(newGrepCommand(flags))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// loadConfig reads the configuration named by --config; an empty path yields
// the defaults.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	if flags.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(flags.configPath)
}
