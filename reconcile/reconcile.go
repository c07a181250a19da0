// Package reconcile implements the consistency operations that bring
// database state back in line with filesystem state: purging records
// whose source files are gone, and extracting stored binary content
// back out to disk.
package reconcile

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/fwojciec/htmlstore"
)

// Reconciler runs consistency operations against the file store.
type Reconciler struct {
	Files htmlstore.FileService
}

// PurgeResult holds the outcome of a purge operation.
type PurgeResult struct {
	// Missing are the records whose source file no longer exists.
	Missing []*htmlstore.FileRef

	// Removed is the number of records actually deleted. Zero on a dry
	// run regardless of how many were missing.
	Removed int
}

// Purge scans every record without stored binary content and checks that
// its source file still exists on disk. Missing records are deleted
// immediately unless dryRun is set, in which case they are only reported.
func (r *Reconciler) Purge(ctx context.Context, dryRun bool) (*PurgeResult, error) {
	refs, err := r.Files.FilesWithoutContent(ctx)
	if err != nil {
		return nil, err
	}

	var result PurgeResult
	for _, ref := range refs {
		_, err := os.Stat(ref.Path)
		if err == nil {
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}

		result.Missing = append(result.Missing, ref)
		if !dryRun {
			if err := r.Files.DeleteFile(ctx, ref.ID); err != nil {
				return nil, err
			}
			result.Removed++
		}
	}

	return &result, nil
}

// ExtractResult holds the outcome of an extract operation.
type ExtractResult struct {
	// AlreadyPresent counts records whose destination file already
	// exists. They are never overwritten.
	AlreadyPresent int

	// Extracted counts records written out (or, on a dry run, that
	// would have been written).
	Extracted int

	// MissingDirs is the distinct, sorted set of parent directories
	// that no longer exist for records that would be written back to
	// their original paths. Non-empty means the operation aborted
	// before any write.
	MissingDirs []string
}

// Aborted reports whether the extract operation stopped without writing
// because destination directories were missing.
func (res *ExtractResult) Aborted() bool {
	return len(res.MissingDirs) > 0
}

// Extract writes stored binary content back out to the filesystem. With
// outputDir set, every record is written to outputDir joined with its
// base name; otherwise each record goes back to its original path.
//
// The operation runs in two phases. The first classifies every record
// with stored content as already-present, orphaned (no output directory
// and the original parent directory is gone) or extractable. If any
// record is orphaned the whole operation aborts with the missing
// directory set and nothing is written; partial extraction would leave
// the filesystem in a confusing state. The second phase writes the
// extractable records, unless dryRun is set.
func (r *Reconciler) Extract(ctx context.Context, outputDir string, dryRun bool) (*ExtractResult, error) {
	refs, err := r.Files.FilesWithContent(ctx)
	if err != nil {
		return nil, err
	}

	var result ExtractResult
	var extractable []*htmlstore.FileRef
	missingDirs := make(map[string]struct{})

	for _, ref := range refs {
		dest := destination(outputDir, ref.Path)

		if pathExists(dest) {
			result.AlreadyPresent++
			continue
		}
		if outputDir == "" {
			if parent := filepath.Dir(ref.Path); !pathExists(parent) {
				missingDirs[parent] = struct{}{}
				continue
			}
		}
		extractable = append(extractable, ref)
	}

	if len(missingDirs) > 0 {
		for dir := range missingDirs {
			result.MissingDirs = append(result.MissingDirs, dir)
		}
		sort.Strings(result.MissingDirs)
		return &result, nil
	}

	for _, ref := range extractable {
		result.Extracted++
		if dryRun {
			continue
		}

		// A record vanishing between classification and write is fatal:
		// no partial silent success.
		content, err := r.Files.FileContent(ctx, ref.ID)
		if err != nil {
			return nil, err
		}

		if err := os.WriteFile(destination(outputDir, ref.Path), content, 0644); err != nil {
			return nil, err
		}
	}

	return &result, nil
}

// destination resolves where a record's content should be written.
func destination(outputDir, path string) string {
	if outputDir != "" {
		return filepath.Join(outputDir, filepath.Base(path))
	}
	return path
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
