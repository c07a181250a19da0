// Package crawl provides the directory indexing pipeline. It walks
// directory trees, filters HTML files by extension, deduplicates against
// the store by path and feeds new files through text extraction into the
// index.
package crawl

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/htmlstore"
)

// acceptableExtensions are the file extensions considered for indexing,
// matched case-insensitively.
var acceptableExtensions = []string{".html", ".htm"}

// ProgressEvent reports progress during an indexing operation.
type ProgressEvent struct {
	Type      ProgressType
	Dir       string
	Path      string
	Completed int
	Total     int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	// ProgressStarted fires once per directory, with Total set to the
	// number of candidate files found directly in it.
	ProgressStarted ProgressType = iota
	// ProgressIndexed fires after a file has been inserted.
	ProgressIndexed
	// ProgressSkipped fires for a file that was already indexed.
	ProgressSkipped
)

// ProgressFunc is a callback for reporting indexing progress.
type ProgressFunc func(event ProgressEvent)

// Indexer walks directories and feeds candidate HTML files into the store.
type Indexer struct {
	Files     htmlstore.FileService
	Converter htmlstore.Converter

	// StoreBinary stores the raw file bytes alongside the extracted text.
	StoreBinary bool

	// Recursive descends into subdirectories after processing a
	// directory's own files.
	Recursive bool

	// Progress, if set, receives events as files are processed.
	Progress ProgressFunc
}

// IndexDir indexes the HTML files in dir, accumulating counters into stats.
// A file whose path is already present in the store is counted as already
// indexed and skipped; everything else is read whole, converted to plain
// text and inserted. With Recursive set, every direct subdirectory is
// processed the same way with the same stats.
//
// Traversal follows whatever order the OS returns; no symlink-loop
// protection is attempted.
func (ix *Indexer) IndexDir(ctx context.Context, dir string, stats *htmlstore.IndexStats) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var candidates []os.DirEntry
	for _, entry := range entries {
		if !entry.IsDir() && acceptableExtension(entry.Name()) {
			candidates = append(candidates, entry)
		}
	}

	ix.report(ProgressEvent{Type: ProgressStarted, Dir: dir, Total: len(candidates)})

	completed := 0
	for _, entry := range candidates {
		path, err := filepath.Abs(filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}

		exists, err := ix.Files.FileExistsByPath(ctx, path)
		if err != nil {
			return err
		}
		completed++
		if exists {
			stats.AlreadyIndexed++
			ix.report(ProgressEvent{Type: ProgressSkipped, Dir: dir, Path: path, Completed: completed, Total: len(candidates)})
			continue
		}

		if err := ix.indexFile(ctx, path, entry.Name()); err != nil {
			return err
		}
		stats.Indexed++
		ix.report(ProgressEvent{Type: ProgressIndexed, Dir: dir, Path: path, Completed: completed, Total: len(candidates)})
	}

	if ix.Recursive {
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if err := ix.IndexDir(ctx, filepath.Join(dir, entry.Name()), stats); err != nil {
				return err
			}
		}
	}

	return nil
}

// indexFile reads a single file and inserts its record into the store.
func (ix *Indexer) indexFile(ctx context.Context, path, name string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// The converter rejects blank input; an empty HTML file is still a
	// valid record, just with nothing to index.
	var text string
	if strings.TrimSpace(string(raw)) != "" {
		text, err = ix.Converter.Convert(string(raw))
		if err != nil {
			return err
		}
	}

	file := &htmlstore.File{
		ID:               htmlstore.Identify(path),
		Name:             name,
		Size:             int64(len(raw)),
		Path:             path,
		PlaintextContent: text,
	}
	if ix.StoreBinary {
		file.Content = raw
	}

	return ix.Files.CreateFile(ctx, file)
}

func (ix *Indexer) report(event ProgressEvent) {
	if ix.Progress != nil {
		ix.Progress(event)
	}
}

// acceptableExtension reports whether name has an indexable extension.
func acceptableExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, acceptable := range acceptableExtensions {
		if ext == acceptable {
			return true
		}
	}
	return false
}
