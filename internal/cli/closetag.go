package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdtype/pkg/htmltag"
)

func newCloseTagCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "close-tag <tag>...",
		Short: "Print the closing tag for each HTML opening tag",
		Long: `Print the closing tag that matches each argument, one per line.

Closing tags are printed unchanged. Self-closing tags, comments and
anything that is not a single tag print an empty line.

Examples:
  mdtype close-tag '<div class="x">'     # </div>
  mdtype close-tag '<p>' '<br/>' '</em>' # </p>, empty line, </em>`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, tag := range args {
				closing := htmltag.ToClosingTag(tag)
				if closing == "" && quiet {
					continue
				}
				if _, err := fmt.Fprintln(out, closing); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "skip arguments with no closing tag")

	return cmd
}
