package configloader

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdtype/pkg/config"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	negative := -time.Second

	tests := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{name: "segmentation", mutate: func(c *config.Config) { c.Segmentation = "words" }, field: "segmentation"},
		{name: "format", mutate: func(c *config.Config) { c.Format = "sarif" }, field: "format"},
		{name: "color", mutate: func(c *config.Config) { c.Color = "sometimes" }, field: "color"},
		{name: "syntax", mutate: func(c *config.Config) { c.Typewriter.Syntax = "dim" }, field: "typewriter.syntax"},
		{name: "burst", mutate: func(c *config.Config) { c.Typewriter.Burst = -1 }, field: "typewriter.burst"},
		{name: "delay", mutate: func(c *config.Config) { c.Typewriter.Delay = &negative }, field: "typewriter.delay"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			tc.mutate(cfg)

			result := Validate(cfg)
			require.False(t, result.Valid())
			require.Len(t, result.Errors, 1)
			assert.Equal(t, tc.field, result.Errors[0].Field)
		})
	}
}

func TestValidate_Defaults(t *testing.T) {
	t.Parallel()

	result := Validate(config.NewConfig())
	assert.True(t, result.Valid())
	assert.False(t, result.HasWarnings())
	assert.True(t, Validate(nil).Valid())
}

func TestValidate_LargeBurstWarns(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Typewriter.Burst = 1000

	result := Validate(cfg)
	assert.True(t, result.Valid())
	require.True(t, result.HasWarnings())
	assert.Equal(t, []string{"warning: typewriter.burst: burst 1000 releases most tokens at once"}, result.AllMessages())
}

func TestValidateWithFile(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Format = "xml"

	result := ValidateWithFile(cfg, "conf.yaml")
	require.Len(t, result.Errors, 1)

	abs, err := filepath.Abs("conf.yaml")
	require.NoError(t, err)
	assert.Equal(t, abs, result.Errors[0].FilePath)
	assert.Contains(t, result.Errors[0].Error(), abs+": format: invalid format")
}
