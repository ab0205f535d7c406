package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/mdtype/internal/configloader"
	"github.com/yaklabco/mdtype/internal/logging"
	"github.com/yaklabco/mdtype/internal/ui/pretty"
	"github.com/yaklabco/mdtype/pkg/config"
	"github.com/yaklabco/mdtype/pkg/fsutil"
)

// stdinName is the display path for input read from standard input.
const stdinName = "<stdin>"

var (
	// ErrInteractiveInput is returned when no file is given and stdin is a terminal.
	ErrInteractiveInput = errors.New("no input: pass a file or pipe Markdown on stdin")

	errReadInput  = errors.New("read input")
	errLoadConfig = errors.New("failed to load configuration")
)

// readInput returns the display path and contents of the command input.
// With no argument, or "-", it reads the command's stdin.
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) > 0 && args[0] != "-" {
		content, err := fsutil.ReadDocument(commandContext(cmd), args[0])
		if err != nil {
			return "", "", fmt.Errorf("%w: %w", errReadInput, err)
		}
		return args[0], string(content), nil
	}

	stdin := cmd.InOrStdin()
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", "", ErrInteractiveInput
	}

	content, err := fsutil.ReadAllLimited(stdin, stdinName)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", errReadInput, err)
	}
	return stdinName, string(content), nil
}

// loadConfig resolves the configuration for a command, layering cliCfg on
// top of files and environment.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	if cmd.Flags().Changed("color") {
		color, _ := cmd.Flags().GetString("color")
		cliCfg.Color = config.ColorMode(color)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(errLoadConfig, err)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", result.LoadedFrom)
	}

	cfg := result.Config
	logger.Debug("configuration loaded",
		logging.FieldSegmentation, cfg.Segmentation,
		logging.FieldTrailingSpace, cfg.TrailingSpace(),
		logging.FieldFormat, cfg.Format,
	)

	return cfg, nil
}

// colorEnabled resolves the configured color mode against w.
func colorEnabled(cfg *config.Config, w io.Writer) bool {
	return pretty.IsColorEnabled(string(cfg.Color), w)
}

// commandContext returns the command's context, or Background when unset.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
