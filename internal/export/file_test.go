package export

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	at := time.Date(2026, 2, 21, 10, 0, 5, 0, time.UTC)
	assert.Equal(t, "tokencalc-breakdown-20260221-100005.csv", FileName("breakdown", at))
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	path, err := WriteFile(dir, "a.csv", func(w io.Writer) error {
		_, err := io.WriteString(w, "x,y\n")
		return err
	})
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x,y\n", string(data))
}

func TestWriteFile_RenderFailureRemovesFile(t *testing.T) {
	dir := t.TempDir()
	boom := errors.New("boom")

	_, err := WriteFile(dir, "b.csv", func(io.Writer) error { return boom })
	assert.ErrorIs(t, err, boom)
	_, statErr := os.Stat(filepath.Join(dir, "b.csv"))
	assert.True(t, os.IsNotExist(statErr))
}
