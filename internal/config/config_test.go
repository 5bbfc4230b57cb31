package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statidx/statidx/internal/docmodel"
)

func TestLoad_ValidYAML_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statidx.yaml")
	contents := `
version: 1
input:
  - path: ./docs
    stem_algorithm: english
output:
  path: built.sidx
build:
  minimum_indexed_substring_length: 4
  minimum_index_ideographic_substring_length: 1
  excerpts_per_result: 3
search:
  excerpt_length: 200
  number_of_results: 20
  number_of_excerpts: 2
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "built.sidx", cfg.Output.Path)
	assert.Equal(t, uint8(4), cfg.Build.MinimumIndexedSubstringLength)
	assert.Equal(t, 200, cfg.Search.ExcerptLength)
	require.Len(t, cfg.Input, 1)
	assert.Equal(t, "english", cfg.Input[0].StemAlgorithm)
}

func TestLoad_MissingFile_ReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefault_PopulatesEveryDefaultedSection(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultBuildConfig(), cfg.Build)
	assert.Equal(t, DefaultSearchConfig(), cfg.Search)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestParseStemAlgorithm_RejectsUnknownName(t *testing.T) {
	_, err := ParseStemAlgorithm("klingon")
	assert.Error(t, err)
}

func TestParseStemAlgorithm_AcceptsKnownNames(t *testing.T) {
	alg, err := ParseStemAlgorithm("french")
	require.NoError(t, err)
	assert.Equal(t, docmodel.StemFrench, alg)
}
