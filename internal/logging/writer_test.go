package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotatingWriter_RotatesWhenSizeExceeded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statidx.log")

	w, err := NewRotatingWriter(path, 0, 2) // maxSize 0 forces rotation on first write
	require.NoError(t, err)
	defer w.Close()

	_, err = w.Write([]byte(strings.Repeat("x", 100)))
	require.NoError(t, err)
	_, err = w.Write([]byte(strings.Repeat("y", 100)))
	require.NoError(t, err)

	_, err = os.Stat(path + ".1")
	assert.NoError(t, err, "expected a rotated .1 file after exceeding maxSize")
}

func TestRotatingWriter_Close_ClosesUnderlyingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statidx.log")

	w, err := NewRotatingWriter(path, 10, 5)
	require.NoError(t, err)
	assert.NoError(t, w.Close())
}
