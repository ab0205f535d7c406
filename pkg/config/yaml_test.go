package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdtype/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("empty config", func(t *testing.T) {
		c := &config.Config{}
		clone := c.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, c, clone)
		assert.Nil(t, clone.IncludeTrailingSpace)
	})

	t.Run("deep copies pointers", func(t *testing.T) {
		original := config.NewConfig()
		original.Strict = true

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.Equal(t, original, clone)

		*clone.IncludeTrailingSpace = false
		*clone.Typewriter.Delay = time.Second

		assert.True(t, *original.IncludeTrailingSpace)
		assert.Equal(t, config.DefaultDelay, *original.Typewriter.Delay)
		assert.True(t, clone.Strict, "CLI-only fields are copied")
	})
}

func TestToYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	original := config.NewConfig()
	original.Format = config.FormatJSON
	original.Strict = true

	data, err := original.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "delay: 20ms")
	assert.Contains(t, string(data), "include_trailing_space: true")
	assert.NotContains(t, string(data), "strict")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)

	original.Strict = false
	assert.Equal(t, original, parsed)
}

func TestToYAML_Nil(t *testing.T) {
	t.Parallel()

	var c *config.Config
	data, err := c.ToYAML()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestToYAMLWithHeader(t *testing.T) {
	t.Parallel()

	c := &config.Config{Format: config.FormatTable}

	data, err := c.ToYAMLWithHeader("# header")
	require.NoError(t, err)
	assert.Equal(t, "# header\n\nformat: table\n", string(data))

	data, err = c.ToYAMLWithHeader("")
	require.NoError(t, err)
	assert.Equal(t, "format: table\n", string(data))
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		check   func(t *testing.T, cfg *config.Config)
		wantErr bool
	}{
		{
			name:  "empty document",
			input: "",
			check: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, &config.Config{}, cfg)
			},
		},
		{
			name:  "comments only",
			input: "# nothing here\n",
			check: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, &config.Config{}, cfg)
			},
		},
		{
			name:  "typewriter block",
			input: "typewriter:\n  delay: 150ms\n  burst: 3\n  syntax: hide\n",
			check: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				require.NotNil(t, cfg.Typewriter.Delay)
				assert.Equal(t, 150*time.Millisecond, *cfg.Typewriter.Delay)
				assert.Equal(t, 3, cfg.Typewriter.Burst)
				assert.True(t, cfg.Typewriter.HideSyntax())
			},
		},
		{
			name:  "explicit false trailing space",
			input: "include_trailing_space: false\n",
			check: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				require.NotNil(t, cfg.IncludeTrailingSpace)
				assert.False(t, cfg.TrailingSpace())
			},
		},
		{
			name:  "unknown key ignored",
			input: "format: json\nflavor: gfm\n",
			check: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, config.FormatJSON, cfg.Format)
			},
		},
		{name: "bad duration", input: "typewriter:\n  delay: soon\n", wantErr: true},
		{name: "malformed", input: "format: [\n", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.FromYAML([]byte(testCase.input))
			if testCase.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			testCase.check(t, cfg)
		})
	}
}

func TestUnknownKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "all known", input: "format: text\ntypewriter:\n  burst: 2\n", want: nil},
		{name: "top level", input: "format: text\nfuture_option: 1\n", want: []string{"future_option"}},
		{
			name:  "nested",
			input: "typewriter:\n  speed: 3\n  delay: 10ms\nflavor: gfm\n",
			want:  []string{"typewriter.speed", "flavor"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := config.UnknownKeys([]byte(testCase.input))
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}
