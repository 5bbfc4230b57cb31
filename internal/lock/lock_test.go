package lock

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLock_LockThenUnlock_ReleasesCleanly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.sidx")
	l := New(path)

	require.NoError(t, l.Lock())
	assert.True(t, l.IsLocked())

	require.NoError(t, l.Unlock())
	assert.False(t, l.IsLocked())
}

func TestFileLock_TryLock_FailsWhileHeldByAnotherHandle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.sidx")

	first := New(path)
	require.NoError(t, first.Lock())
	defer first.Unlock()

	second := New(path)
	acquired, err := second.TryLock()
	require.NoError(t, err)
	assert.False(t, acquired)
}

func TestFileLock_Unlock_IsSafeWhenNotLocked(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "index.sidx"))
	assert.NoError(t, l.Unlock())
}

func TestFileLock_Path_IsDerivedFromOutputPath(t *testing.T) {
	l := New("/tmp/index.sidx")
	assert.Equal(t, "/tmp/index.sidx.lock", l.Path())
}
