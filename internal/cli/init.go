package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdtype/internal/logging"
	"github.com/yaklabco/mdtype/pkg/config"
	"github.com/yaklabco/mdtype/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// defaultConfigFile is the file written by init when --output is empty.
const defaultConfigFile = ".mdtype.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new mdtype configuration file",
		Long: `Create a new .mdtype.yml configuration file in the current directory
with the default settings.

Examples:
  mdtype init                      Create minimal .mdtype.yml
  mdtype init --full               Create config with every option documented
  mdtype init --output custom.yml  Write to a custom file path`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(commandContext(cmd), flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with every option documented")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .mdtype.yml)")

	return cmd
}

func runInit(ctx context.Context, flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultConfigFile
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil && flags.force {
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{Full: flags.full})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	err = fsutil.WriteAtomic(ctx, absPath, content, fsutil.WriteOptions{
		Mode:      configFilePermissions,
		NoClobber: !flags.force,
	})
	if errors.Is(err, fsutil.ErrExists) {
		return fmt.Errorf("%w; use --force to overwrite", err)
	}
	if err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'mdtype scan <file>' to see the token stream")

	return nil
}
