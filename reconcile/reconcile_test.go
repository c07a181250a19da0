package reconcile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/htmlstore"
	"github.com/fwojciec/htmlstore/mock"
	"github.com/fwojciec/htmlstore/reconcile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestReconciler_Purge(t *testing.T) {
	t.Parallel()

	t.Run("removes only records whose file is gone", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		present := filepath.Join(dir, "present.html")
		missing := filepath.Join(dir, "missing.html")
		writeFile(t, present, "<p>here</p>")

		var deleted []string
		files := &mock.FileService{
			FilesWithoutContentFn: func(_ context.Context) ([]*htmlstore.FileRef, error) {
				return []*htmlstore.FileRef{
					{ID: "id-present", Path: present},
					{ID: "id-missing", Path: missing},
				}, nil
			},
			DeleteFileFn: func(_ context.Context, id string) error {
				deleted = append(deleted, id)
				return nil
			},
		}

		r := &reconcile.Reconciler{Files: files}
		result, err := r.Purge(context.Background(), false)

		require.NoError(t, err)
		require.Len(t, result.Missing, 1)
		assert.Equal(t, "id-missing", result.Missing[0].ID)
		assert.Equal(t, 1, result.Removed)
		assert.Equal(t, []string{"id-missing"}, deleted)
	})

	t.Run("dry run reports without deleting", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		missing := filepath.Join(dir, "missing.html")

		files := &mock.FileService{
			FilesWithoutContentFn: func(_ context.Context) ([]*htmlstore.FileRef, error) {
				return []*htmlstore.FileRef{{ID: "id-missing", Path: missing}}, nil
			},
			DeleteFileFn: func(_ context.Context, id string) error {
				t.Fatal("dry run must not delete")
				return nil
			},
		}

		r := &reconcile.Reconciler{Files: files}
		result, err := r.Purge(context.Background(), true)

		require.NoError(t, err)
		assert.Len(t, result.Missing, 1)
		assert.Equal(t, 0, result.Removed)
	})

	t.Run("reports nothing missing when all files exist", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		present := filepath.Join(dir, "present.html")
		writeFile(t, present, "<p>here</p>")

		files := &mock.FileService{
			FilesWithoutContentFn: func(_ context.Context) ([]*htmlstore.FileRef, error) {
				return []*htmlstore.FileRef{{ID: "id-present", Path: present}}, nil
			},
		}

		r := &reconcile.Reconciler{Files: files}
		result, err := r.Purge(context.Background(), false)

		require.NoError(t, err)
		assert.Empty(t, result.Missing)
		assert.Equal(t, 0, result.Removed)
	})
}

func TestReconciler_Extract(t *testing.T) {
	t.Parallel()

	t.Run("writes content back to original paths", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		target := filepath.Join(dir, "page.html")

		files := &mock.FileService{
			FilesWithContentFn: func(_ context.Context) ([]*htmlstore.FileRef, error) {
				return []*htmlstore.FileRef{{ID: "id-1", Path: target}}, nil
			},
			FileContentFn: func(_ context.Context, id string) ([]byte, error) {
				return []byte("<p>restored</p>"), nil
			},
		}

		r := &reconcile.Reconciler{Files: files}
		result, err := r.Extract(context.Background(), "", false)

		require.NoError(t, err)
		assert.False(t, result.Aborted())
		assert.Equal(t, 1, result.Extracted)
		assert.Equal(t, 0, result.AlreadyPresent)

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "<p>restored</p>", string(data))
	})

	t.Run("writes to output directory by base name", func(t *testing.T) {
		t.Parallel()

		outDir := t.TempDir()

		files := &mock.FileService{
			FilesWithContentFn: func(_ context.Context) ([]*htmlstore.FileRef, error) {
				return []*htmlstore.FileRef{
					{ID: "id-1", Path: "/gone/elsewhere/page.html"},
				}, nil
			},
			FileContentFn: func(_ context.Context, id string) ([]byte, error) {
				return []byte("<p>restored</p>"), nil
			},
		}

		r := &reconcile.Reconciler{Files: files}
		result, err := r.Extract(context.Background(), outDir, false)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Extracted)

		data, err := os.ReadFile(filepath.Join(outDir, "page.html"))
		require.NoError(t, err)
		assert.Equal(t, "<p>restored</p>", string(data))
	})

	t.Run("skips destinations that already exist", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		present := filepath.Join(dir, "present.html")
		writeFile(t, present, "original bytes")

		files := &mock.FileService{
			FilesWithContentFn: func(_ context.Context) ([]*htmlstore.FileRef, error) {
				return []*htmlstore.FileRef{{ID: "id-1", Path: present}}, nil
			},
			FileContentFn: func(_ context.Context, id string) ([]byte, error) {
				t.Fatal("content must not be fetched for already-present files")
				return nil, nil
			},
		}

		r := &reconcile.Reconciler{Files: files}
		result, err := r.Extract(context.Background(), "", false)

		require.NoError(t, err)
		assert.Equal(t, 1, result.AlreadyPresent)
		assert.Equal(t, 0, result.Extracted)

		// Never overwritten.
		data, err := os.ReadFile(present)
		require.NoError(t, err)
		assert.Equal(t, "original bytes", string(data))
	})

	t.Run("aborts wholesale when a parent directory is missing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		extractableTarget := filepath.Join(dir, "fine.html")
		orphanA := "/gone/away/a.html"
		orphanB := "/gone/away/b.html"
		orphanC := "/vanished/c.html"

		files := &mock.FileService{
			FilesWithContentFn: func(_ context.Context) ([]*htmlstore.FileRef, error) {
				return []*htmlstore.FileRef{
					{ID: "id-fine", Path: extractableTarget},
					{ID: "id-a", Path: orphanA},
					{ID: "id-b", Path: orphanB},
					{ID: "id-c", Path: orphanC},
				}, nil
			},
			FileContentFn: func(_ context.Context, id string) ([]byte, error) {
				t.Fatal("aborted extract must not fetch content")
				return nil, nil
			},
		}

		r := &reconcile.Reconciler{Files: files}
		result, err := r.Extract(context.Background(), "", false)

		require.NoError(t, err)
		assert.True(t, result.Aborted())
		assert.Equal(t, []string{"/gone/away", "/vanished"}, result.MissingDirs)
		assert.Equal(t, 0, result.Extracted)

		// Even the perfectly extractable record must not be written.
		_, statErr := os.Stat(extractableTarget)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("dry run classifies without writing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		target := filepath.Join(dir, "page.html")

		files := &mock.FileService{
			FilesWithContentFn: func(_ context.Context) ([]*htmlstore.FileRef, error) {
				return []*htmlstore.FileRef{{ID: "id-1", Path: target}}, nil
			},
			FileContentFn: func(_ context.Context, id string) ([]byte, error) {
				t.Fatal("dry run must not fetch content")
				return nil, nil
			},
		}

		r := &reconcile.Reconciler{Files: files}
		result, err := r.Extract(context.Background(), "", true)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Extracted)

		_, statErr := os.Stat(target)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("fails the run when content vanishes before write", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		target := filepath.Join(dir, "page.html")

		files := &mock.FileService{
			FilesWithContentFn: func(_ context.Context) ([]*htmlstore.FileRef, error) {
				return []*htmlstore.FileRef{{ID: "id-1", Path: target}}, nil
			},
			FileContentFn: func(_ context.Context, id string) ([]byte, error) {
				return nil, htmlstore.Errorf(htmlstore.ENOTFOUND, "file %q has no stored content", id)
			},
		}

		r := &reconcile.Reconciler{Files: files}
		_, err := r.Extract(context.Background(), "", false)

		require.Error(t, err)
		assert.Equal(t, htmlstore.ENOTFOUND, htmlstore.ErrorCode(err))

		_, statErr := os.Stat(target)
		assert.True(t, os.IsNotExist(statErr))
	})
}
