package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdtype/internal/logging"
	"github.com/yaklabco/mdtype/internal/typewriter"
	"github.com/yaklabco/mdtype/internal/ui/pretty"
	"github.com/yaklabco/mdtype/pkg/config"
	"github.com/yaklabco/mdtype/pkg/scanner"
)

type playFlags struct {
	delay         time.Duration
	burst         int
	hideSyntax    bool
	codeUnits     bool
	trimLineSpace bool
}

func newPlayCommand() *cobra.Command {
	flags := &playFlags{}

	cmd := &cobra.Command{
		Use:   "play [file]",
		Short: "Type a Markdown document out token by token",
		Long: `Write a Markdown document to standard output one token at a time.

Syntax tokens such as "**" or "<em>" appear whole, so a partially typed
document never shows half a marker. Interrupt with Ctrl-C to stop.

Examples:
  mdtype play README.md                  # 20ms per token
  mdtype play --delay 50ms README.md     # Slower
  mdtype play --delay 0 README.md        # No pacing
  mdtype play --hide-syntax README.md    # Display text only`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, args, flags)
		},
	}

	cmd.Flags().DurationVar(&flags.delay, "delay", config.DefaultDelay, "pause between tokens (0 disables pacing)")
	cmd.Flags().IntVar(&flags.burst, "burst", config.DefaultBurst, "tokens released per tick")
	cmd.Flags().BoolVar(&flags.hideSyntax, "hide-syntax", false, "skip syntax tokens")
	cmd.Flags().BoolVar(&flags.codeUnits, "codeunits", false, "split display text by code point instead of grapheme")
	cmd.Flags().BoolVar(&flags.trimLineSpace, "trim-line-space", false,
		"emit the space after a line marker as a separate whitespace token")

	return cmd
}

func runPlay(cmd *cobra.Command, args []string, flags *playFlags) error {
	cliCfg := &config.Config{}
	if cmd.Flags().Changed("delay") {
		cliCfg.Typewriter.Delay = &flags.delay
	}
	if cmd.Flags().Changed("burst") {
		cliCfg.Typewriter.Burst = flags.burst
	}
	if flags.hideSyntax {
		cliCfg.Typewriter.Syntax = config.SyntaxHide
	}
	if flags.codeUnits {
		cliCfg.Segmentation = config.SegmentationCodeUnit
	}
	if flags.trimLineSpace {
		include := false
		cliCfg.IncludeTrailingSpace = &include
	}

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	opts, err := cfg.ScannerOptions()
	if err != nil {
		return fmt.Errorf("scanner options: %w", err)
	}

	path, src, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(
		logging.WithFields(commandContext(cmd), logging.FieldPath, path),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	out := cmd.OutOrStdout()
	tw := cfg.Typewriter
	player := &typewriter.Player{
		Writer:     out,
		Limiter:    typewriter.NewLimiter(tw.DelayOrDefault(), tw.Burst),
		Styles:     pretty.NewStyles(colorEnabled(cfg, out)),
		HideSyntax: tw.HideSyntax(),
	}

	logger := logging.FromContext(ctx)
	logger.Debug("starting playback",
		logging.FieldDelay, tw.DelayOrDefault(),
		logging.FieldBurst, tw.Burst,
		logging.FieldHideSyntax, player.HideSyntax,
	)

	stats, err := player.Play(ctx, scanner.New(src, opts).All())
	if errors.Is(err, context.Canceled) {
		logger.Debug("playback interrupted", logging.FieldTokens, stats.Counts.Tokens)
		return nil
	}
	if err != nil {
		return fmt.Errorf("play %s: %w", path, err)
	}

	return nil
}
