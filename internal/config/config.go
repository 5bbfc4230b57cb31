// Package config defines the on-disk configuration for statidx's build and
// search commands: a YAML document with the same typed-struct-plus-tags
// shape as the rest of the ambient stack, loaded with gopkg.in/yaml.v3.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/statidx/statidx/internal/container"
	"github.com/statidx/statidx/internal/docmodel"
)

// Config is the top-level document a statidx.yaml file decodes into.
type Config struct {
	Version int            `yaml:"version"`
	Input   []InputConfig  `yaml:"input"`
	Output  OutputConfig   `yaml:"output"`
	Build   BuildConfig    `yaml:"build"`
	Search  SearchConfig   `yaml:"search"`
	Logging LoggingConfig  `yaml:"logging"`
}

// InputConfig names one source of documents to index.
type InputConfig struct {
	Path          string            `yaml:"path"`
	Title         string            `yaml:"title,omitempty"`
	URL           string            `yaml:"url,omitempty"`
	StemAlgorithm string            `yaml:"stem_algorithm,omitempty"`
	Fields        map[string]string `yaml:"fields,omitempty"`
}

// OutputConfig names where the built index file is written.
type OutputConfig struct {
	Path    string `yaml:"path"`
	Sidecar bool   `yaml:"sidecar,omitempty"`
}

// BuildConfig carries the same builder knobs as container.BuildConfig,
// expressed in YAML-friendly field names (spec §6).
type BuildConfig struct {
	MinimumIndexedSubstringLength          uint8  `yaml:"minimum_indexed_substring_length"`
	MinimumIndexIdeographicSubstringLength uint8  `yaml:"minimum_index_ideographic_substring_length"`
	ExcerptsPerResult                      uint32 `yaml:"excerpts_per_result"`
}

// ToContainerConfig converts to the type the builder actually consumes.
func (b BuildConfig) ToContainerConfig() container.BuildConfig {
	return container.BuildConfig{
		MinimumIndexedSubstringLength:          b.MinimumIndexedSubstringLength,
		MinimumIndexIdeographicSubstringLength: b.MinimumIndexIdeographicSubstringLength,
		ExcerptsPerResult:                      b.ExcerptsPerResult,
	}
}

// SearchConfig carries query-time ranking and excerpt knobs.
type SearchConfig struct {
	ExcerptLength    int `yaml:"excerpt_length"`
	NumberOfResults  int `yaml:"number_of_results"`
	NumberOfExcerpts int `yaml:"number_of_excerpts"`
}

// LoggingConfig controls the slog-based JSON logger (spec's ambient stack).
type LoggingConfig struct {
	Level         string `yaml:"level"`
	FilePath      string `yaml:"file_path,omitempty"`
	MaxSizeMB     int    `yaml:"max_size_mb,omitempty"`
	MaxFiles      int    `yaml:"max_files,omitempty"`
	WriteToStderr bool   `yaml:"write_to_stderr"`
}

// DefaultBuildConfig returns the defaults named in spec §6.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		MinimumIndexedSubstringLength:          3,
		MinimumIndexIdeographicSubstringLength: 1,
		ExcerptsPerResult:                      8,
	}
}

// DefaultSearchConfig returns stork's published query-time defaults.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{ExcerptLength: 150, NumberOfResults: 10, NumberOfExcerpts: 5}
}

// DefaultLoggingConfig returns a sensible default: info level, stderr only.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{Level: "info", WriteToStderr: true, MaxSizeMB: 10, MaxFiles: 5}
}

// Default returns a complete Config with every section defaulted and no
// inputs configured; callers populate Input and Output before building.
func Default() *Config {
	return &Config{
		Version: 1,
		Output:  OutputConfig{Path: "index.sidx"},
		Build:   DefaultBuildConfig(),
		Search:  DefaultSearchConfig(),
		Logging: DefaultLoggingConfig(),
	}
}

// Load reads and parses a statidx.yaml configuration file from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseStemAlgorithm resolves an InputConfig's stem algorithm string,
// defaulting to no stemming for an empty value.
func ParseStemAlgorithm(name string) (docmodel.StemAlgorithm, error) {
	alg, ok := docmodel.ParseStemAlgorithm(name)
	if !ok {
		return docmodel.StemNone, fmt.Errorf("unsupported stem algorithm %q", name)
	}
	return alg, nil
}
