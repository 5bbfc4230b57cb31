package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statidx/statidx/pkg/statidx"
)

func writeIndexFile(t *testing.T, dir, name string, docs []statidx.InputDocument) string {
	t.Helper()

	idx, _, err := statidx.BuildIndex(context.Background(), statidx.DefaultBuildConfig(), docs, nil)
	require.NoError(t, err)

	data, err := statidx.EncodeIndex(idx)
	require.NoError(t, err)

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestSidecarCmd_MergesSidecarDocumentsIntoBase(t *testing.T) {
	dir := t.TempDir()
	basePath := writeIndexFile(t, dir, "base.sidx", []statidx.InputDocument{{Title: "Base", Body: "apple"}})
	sidecarPath := writeIndexFile(t, dir, "sidecar.sidx", []statidx.InputDocument{{Title: "Sidecar", Body: "banana"}})

	var out bytes.Buffer
	cmd := newSidecarCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{basePath, sidecarPath})

	require.NoError(t, cmd.Execute())

	merged, err := os.ReadFile(basePath)
	require.NoError(t, err)
	idx, err := statidx.ParseBytesAsIndex(merged)
	require.NoError(t, err)
	assert.Len(t, idx.Documents, 2)
}
