package configloader

import "github.com/yaklabco/mdtype/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointers: override overwrites base if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Segmentation != "" {
		result.Segmentation = override.Segmentation
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}

	// Pointer fields carry an explicit false or zero from the override.
	if override.IncludeTrailingSpace != nil {
		value := *override.IncludeTrailingSpace
		result.IncludeTrailingSpace = &value
	}
	if override.Typewriter.Delay != nil {
		value := *override.Typewriter.Delay
		result.Typewriter.Delay = &value
	}

	if override.Typewriter.Burst != 0 {
		result.Typewriter.Burst = override.Typewriter.Burst
	}
	if override.Typewriter.Syntax != "" {
		result.Typewriter.Syntax = override.Typewriter.Syntax
	}

	// CLI-only flags can only be switched on.
	if override.Strict {
		result.Strict = true
	}

	return &result
}

// MergeAll merges multiple configurations in order.
// Later configs take precedence over earlier ones.
func MergeAll(configs ...*config.Config) *config.Config {
	var result *config.Config
	for _, cfg := range configs {
		result = merge(result, cfg)
	}
	return result
}
