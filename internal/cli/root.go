// Package cli provides the Cobra command structure for mdtype.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdtype/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdtype command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdtype",
		Short: "Tokenize Markdown for typewriter-style rendering",
		Long: `mdtype splits Markdown with inline HTML into a flat stream of tokens
that can be revealed one at a time without ever showing half a marker.

Line markers, fences, emphasis marks and HTML tags come out as single
syntax tokens. Display text comes out one grapheme cluster at a time, with
runs of whitespace kept together. Joining the tokens reproduces the input
byte for byte.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newPlayCommand())
	rootCmd.AddCommand(newCloseTagCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
