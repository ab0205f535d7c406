package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdtype/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes new file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".mdtype.yml")
		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("format: json\n"), fsutil.WriteOptions{}))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "format: json\n", string(got))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, fsutil.DefaultFileMode, info.Mode().Perm())
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("new"), fsutil.WriteOptions{Mode: 0o600}))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))
	})

	t.Run("no clobber keeps existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

		err := fsutil.WriteAtomic(context.Background(), path, []byte("new"), fsutil.WriteOptions{NoClobber: true})
		require.ErrorIs(t, err, fsutil.ErrExists)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "original", string(got))
	})

	t.Run("leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, fsutil.WriteAtomic(context.Background(), filepath.Join(dir, "a.yml"), []byte("x"), fsutil.WriteOptions{}))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nope", "a.yml")
		assert.Error(t, fsutil.WriteAtomic(context.Background(), path, []byte("x"), fsutil.WriteOptions{}))
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := filepath.Join(t.TempDir(), "a.yml")
		require.ErrorIs(t, fsutil.WriteAtomic(ctx, path, []byte("x"), fsutil.WriteOptions{}), context.Canceled)
		assert.NoFileExists(t, path)
	})
}
