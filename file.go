package htmlstore

import (
	"context"
	"time"
)

// File represents one indexed HTML file.
type File struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	Path string `json:"path"`

	// Added is the date the record was created, at day granularity.
	// It is never updated after insert.
	Added time.Time `json:"added"`

	// PlaintextContent is the text extracted from the HTML source.
	// It is indexed for full-text search together with Name.
	PlaintextContent string `json:"plaintextContent"`

	// Content holds the raw HTML bytes when binary storage was requested
	// at index time; nil otherwise.
	Content []byte `json:"content,omitempty"`
}

// Validate returns an error if the file contains invalid fields.
func (f *File) Validate() error {
	if f.ID == "" {
		return Errorf(EINVALID, "file ID required")
	}
	if f.Name == "" {
		return Errorf(EINVALID, "file name required")
	}
	if f.Path == "" {
		return Errorf(EINVALID, "file path required")
	}
	return nil
}

// FileRef is a lightweight reference to a stored file, used by the
// reconciliation operations that only need identity and location.
type FileRef struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// SearchResult is one row of a full-text search, newest first.
type SearchResult struct {
	Added time.Time `json:"added"`
	Name  string    `json:"name"`
	Path  string    `json:"path"`
	Size  int64     `json:"size"`
}

// IndexStats accumulates counters across one indexing invocation,
// possibly spanning multiple root directories.
type IndexStats struct {
	AlreadyIndexed int
	Indexed        int
}

// FileService represents a service for managing indexed file records.
type FileService interface {
	// CreateFile creates a new file record. The caller is expected to
	// have checked FileExistsByPath first; if a record with the same ID
	// nevertheless exists, ECONFLICT is returned and nothing is
	// overwritten.
	CreateFile(ctx context.Context, file *File) error

	// FileExistsByPath reports whether a record with the given path exists.
	FileExistsByPath(ctx context.Context, path string) (bool, error)

	// FilesWithoutContent returns refs for all records whose raw content
	// was not stored. These are the records expected to still reside on
	// disk and are the input to Purge.
	FilesWithoutContent(ctx context.Context) ([]*FileRef, error)

	// FilesWithContent returns refs for all records whose raw content is
	// stored in the database. These are the input to Extract.
	FilesWithContent(ctx context.Context) ([]*FileRef, error)

	// FileContent returns the stored raw bytes for a record.
	// Returns ENOTFOUND if the record does not exist or has no content.
	FileContent(ctx context.Context, id string) ([]byte, error)

	// DeleteFile permanently removes a record and its full-text index
	// entries. Returns ENOTFOUND if the record does not exist.
	DeleteFile(ctx context.Context, id string) error

	// SearchFiles runs a full-text query against name and extracted text.
	// Results are ordered newest-first by Added and capped at 50.
	// A blank query returns an empty result without error.
	SearchFiles(ctx context.Context, query string) ([]*SearchResult, error)
}
