package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(YAMLIndent())

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// ToYAMLWithHeader serializes the configuration with a header comment.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	yamlBytes, err := c.ToYAML()
	if err != nil {
		return nil, err
	}

	if header == "" {
		return yamlBytes, nil
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if header[len(header)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(yamlBytes)

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes. Unknown keys are
// ignored; use UnknownKeys to report them.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(cfg); err != nil {
		// An empty or comment-only document decodes to EOF.
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	return cfg, nil
}

// knownKeys lists the recognized mapping keys by section. The empty
// section is the document root.
//
//nolint:gochecknoglobals // read-only lookup table
var knownKeys = map[string][]string{
	"":           {"segmentation", "include_trailing_space", "format", "color", "typewriter"},
	"typewriter": {"delay", "burst", "syntax"},
}

// UnknownKeys returns the dotted paths of mapping keys in data that the
// configuration does not recognize, in document order.
func UnknownKeys(data []byte) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	var unknown []string
	var walk func(node *yaml.Node, section string)
	walk = func(node *yaml.Node, section string) {
		if node.Kind != yaml.MappingNode {
			return
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i].Value, node.Content[i+1]
			path := key
			if section != "" {
				path = section + "." + key
			}
			if !slices.Contains(knownKeys[section], key) {
				unknown = append(unknown, path)
				continue
			}
			if _, ok := knownKeys[path]; ok {
				walk(value, path)
			}
		}
	}
	walk(doc.Content[0], "")

	return unknown, nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c

	if c.IncludeTrailingSpace != nil {
		include := *c.IncludeTrailingSpace
		clone.IncludeTrailingSpace = &include
	}
	if c.Typewriter.Delay != nil {
		delay := *c.Typewriter.Delay
		clone.Typewriter.Delay = &delay
	}

	return &clone
}

// YAMLIndent returns the default YAML indentation.
func YAMLIndent() int {
	return 2
}
