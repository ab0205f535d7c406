package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/yaklabco/mdtype/pkg/config"
)

// envVarPrefix is the prefix for all mdtype environment variables.
const envVarPrefix = "MDTYPE_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeDuration
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"SEGMENTATION":           {field: "segmentation", typ: envTypeString},
	"INCLUDE_TRAILING_SPACE": {field: "include_trailing_space", typ: envTypeBool},
	"FORMAT":                 {field: "format", typ: envTypeString},
	"COLOR":                  {field: "color", typ: envTypeString},
	"TYPEWRITER_DELAY":       {field: "typewriter.delay", typ: envTypeDuration},
	"TYPEWRITER_BURST":       {field: "typewriter.burst", typ: envTypeInt},
	"TYPEWRITER_SYNTAX":      {field: "typewriter.syntax", typ: envTypeString},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with MDTYPE_ (e.g., MDTYPE_FORMAT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeDuration:
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration for %s: %q (e.g. 20ms)", envVar, value)
		}
		return setDurationField(cfg, mapping.field, d)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "segmentation":
		cfg.Segmentation = config.Segmentation(value)
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "color":
		cfg.Color = config.ColorMode(value)
	case "typewriter.syntax":
		cfg.Typewriter.Syntax = config.SyntaxMode(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "include_trailing_space":
		cfg.IncludeTrailingSpace = &value
	default:
		return fmt.Errorf("unknown bool field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "typewriter.burst":
		cfg.Typewriter.Burst = value
	default:
		return fmt.Errorf("unknown int field: %s", field)
	}
	return nil
}

// setDurationField sets a duration field on the config by field path.
func setDurationField(cfg *config.Config, field string, value time.Duration) error {
	switch field {
	case "typewriter.delay":
		cfg.Typewriter.Delay = &value
	default:
		return fmt.Errorf("unknown duration field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variable names, sorted.
func ListEnvVars() []string {
	vars := make([]string, 0, len(envMappings))
	for suffix := range envMappings {
		vars = append(vars, envVarPrefix+suffix)
	}
	sort.Strings(vars)
	return vars
}
