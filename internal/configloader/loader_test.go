package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yaklabco/mdtype/pkg/config"
)

func isolatedOptions(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:       dir,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	}
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}
	if result.Config.Segmentation != config.SegmentationGrapheme {
		t.Errorf("expected segmentation %q, got %q", config.SegmentationGrapheme, result.Config.Segmentation)
	}
	if !result.Config.TrailingSpace() {
		t.Error("expected trailing space to default to true")
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no files loaded, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".mdtype.yml")
	writeConfig(t, configPath, `
segmentation: codeunit
include_trailing_space: false
typewriter:
  delay: 5ms
`)

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Segmentation != config.SegmentationCodeUnit {
		t.Errorf("expected segmentation codeunit, got %q", result.Config.Segmentation)
	}
	if result.Config.TrailingSpace() {
		t.Error("expected trailing space to be disabled")
	}
	if got := result.Config.Typewriter.DelayOrDefault(); got != 5*time.Millisecond {
		t.Errorf("expected delay 5ms, got %v", got)
	}
	if result.Config.Format != config.FormatText {
		t.Errorf("expected default format to survive merge, got %q", result.Config.Format)
	}
	if len(result.LoadedFrom) != 1 || result.LoadedFrom[0] != configPath {
		t.Errorf("expected LoadedFrom [%s], got %v", configPath, result.LoadedFrom)
	}
}

func TestLoad_ProjectConfigFromSubdirectory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeConfig(t, filepath.Join(root, "mdtype.yaml"), "format: json\n")

	sub := filepath.Join(root, "docs", "guide")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	result, err := Load(context.Background(), isolatedOptions(sub))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.Format != config.FormatJSON {
		t.Errorf("expected format json, got %q", result.Config.Format)
	}
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	outer := t.TempDir()
	writeConfig(t, filepath.Join(outer, ".mdtype.yml"), "format: json\n")

	repo := filepath.Join(outer, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, err := FindProjectConfig(context.Background(), repo)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if path != "" {
		t.Errorf("expected search to stop at VCS root, found %q", path)
	}
}

func TestLoad_ExplicitConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, filepath.Join(tmpDir, ".mdtype.yml"), "format: json\n")

	explicit := filepath.Join(tmpDir, "custom.yaml")
	writeConfig(t, explicit, "color: never\n")

	opts := isolatedOptions(tmpDir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Color != config.ColorNever {
		t.Errorf("expected color never, got %q", result.Config.Color)
	}
	if result.Config.Format != config.FormatText {
		t.Errorf("explicit config should skip project config, got format %q", result.Config.Format)
	}
	if result.Paths.Explicit != explicit {
		t.Errorf("expected explicit path %q, got %q", explicit, result.Paths.Explicit)
	}
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, filepath.Join(tmpDir, ".mdtype.yml"), `
format: json
typewriter:
  burst: 4
`)

	opts := isolatedOptions(tmpDir)
	opts.CLIConfig = &config.Config{
		Format: config.FormatTable,
		Strict: true,
	}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Format != config.FormatTable {
		t.Errorf("expected CLI format table, got %q", result.Config.Format)
	}
	if result.Config.Typewriter.Burst != 4 {
		t.Errorf("expected file burst 4, got %d", result.Config.Typewriter.Burst)
	}
	if !result.Config.Strict {
		t.Error("expected strict from CLI")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, filepath.Join(tmpDir, ".mdtype.yml"), "format: json\n")
	t.Setenv("MDTYPE_FORMAT", "summary")

	opts := isolatedOptions(tmpDir)
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.Format != config.FormatSummary {
		t.Errorf("expected env format summary, got %q", result.Config.Format)
	}
}

func TestLoad_UserConfig(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	userDir := filepath.Join(xdg, "mdtype")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeConfig(t, filepath.Join(userDir, "config.yaml"), "color: always\nformat: json\n")

	project := t.TempDir()
	writeConfig(t, filepath.Join(project, ".mdtype.yml"), "format: table\n")

	result, err := Load(context.Background(), LoadOptions{WorkingDir: project, IgnoreEnv: true})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Color != config.ColorAlways {
		t.Errorf("expected user color always, got %q", result.Config.Color)
	}
	if result.Config.Format != config.FormatTable {
		t.Errorf("project config should override user config, got %q", result.Config.Format)
	}
	if len(result.LoadedFrom) != 2 {
		t.Errorf("expected two loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".mdtype.yml")
	writeConfig(t, configPath, "format: xml\n")

	_, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err == nil {
		t.Fatal("expected error for invalid format")
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if validationErr.Field != "format" {
		t.Errorf("expected field format, got %q", validationErr.Field)
	}
	if !strings.Contains(err.Error(), ".mdtype.yml") {
		t.Errorf("expected file path in error, got %q", err.Error())
	}
}

func TestLoad_UnknownKey(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, filepath.Join(tmpDir, ".mdtype.yml"), "format: json\nflavor: gfm\n")

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.Format != config.FormatJSON {
		t.Errorf("Format = %q, want %q", result.Config.Format, config.FormatJSON)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], `"flavor"`) {
		t.Errorf("expected one warning naming flavor, got %v", result.Warnings)
	}
}

func TestLoad_MissingExplicitConfig(t *testing.T) {
	t.Parallel()

	opts := isolatedOptions(t.TempDir())
	opts.ExplicitPath = filepath.Join(t.TempDir(), "missing.yaml")

	if _, err := Load(context.Background(), opts); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, isolatedOptions(t.TempDir()))
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
