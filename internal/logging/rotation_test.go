package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateRemovesOldestBeyondLimit(t *testing.T) {
	dir := t.TempDir()

	names := []string{
		"chainpulse_20250801_old.log",
		"chainpulse_20250802_mid.log",
		"chainpulse_20250803_new.log",
	}
	base := time.Now().Add(-time.Hour)
	for i, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
		require.NoError(t, os.Chtimes(path, base.Add(time.Duration(i)*time.Minute), base.Add(time.Duration(i)*time.Minute)))
	}
	// Unrelated files are never touched.
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("keep"), 0600))

	require.NoError(t, rotate(dir, 2))

	assert.NoFileExists(t, filepath.Join(dir, names[0]))
	assert.FileExists(t, filepath.Join(dir, names[1]))
	assert.FileExists(t, filepath.Join(dir, names[2]))
	assert.FileExists(t, other)
}

func TestRotateUnderLimitIsNoOp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chainpulse_20250801.log")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	require.NoError(t, rotate(dir, 10))
	assert.FileExists(t, path)
}

func TestRotateZeroMaxIsNoOp(t *testing.T) {
	assert.NoError(t, rotate(t.TempDir(), 0))
}

func TestInitDisabledReturnsNoop(t *testing.T) {
	l, err := Init(Config{Enabled: false})
	require.NoError(t, err)
	l.Info("dropped")
	assert.NoError(t, l.Shutdown())
}
