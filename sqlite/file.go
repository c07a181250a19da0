package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/htmlstore"
)

// dateFormat is the storage format for the added column. Day granularity,
// ISO ordering: lexicographic comparison matches chronological order, which
// the newest-first search query relies on.
const dateFormat = "2006-01-02"

// searchLimit caps the number of rows returned by a full-text query.
const searchLimit = 50

// Compile-time interface verification.
var _ htmlstore.FileService = (*FileService)(nil)

// FileService implements htmlstore.FileService using SQLite.
type FileService struct {
	db *DB
}

// NewFileService creates a new FileService.
func NewFileService(db *DB) *FileService {
	return &FileService{db: db}
}

// CreateFile creates a new file record.
func (s *FileService) CreateFile(ctx context.Context, file *htmlstore.File) error {
	if err := file.Validate(); err != nil {
		return err
	}

	if file.Added.IsZero() {
		file.Added = time.Now().UTC()
	}

	var content any
	if file.Content != nil {
		content = file.Content
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO files (id, name, size, path, added, plaintext_content, content)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, file.ID, file.Name, file.Size, file.Path, file.Added.Format(dateFormat),
		file.PlaintextContent, content)

	if err != nil {
		// The caller is expected to have checked FileExistsByPath; a
		// primary key collision here means the record is already
		// indexed and must not be overwritten.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return htmlstore.Errorf(htmlstore.ECONFLICT, "file %q already indexed", file.Path)
		}
		return err
	}

	return nil
}

// FileExistsByPath reports whether a record with the given path exists.
func (s *FileService) FileExistsByPath(ctx context.Context, path string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `
		SELECT 1 FROM files WHERE path = ? LIMIT 1
	`, path).Scan(&one)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// FilesWithoutContent returns refs for all records with no stored raw content.
func (s *FileService) FilesWithoutContent(ctx context.Context) ([]*htmlstore.FileRef, error) {
	return s.fileRefs(ctx, `
		SELECT id, path FROM files WHERE content IS NULL ORDER BY path
	`)
}

// FilesWithContent returns refs for all records with stored raw content.
func (s *FileService) FilesWithContent(ctx context.Context) ([]*htmlstore.FileRef, error) {
	return s.fileRefs(ctx, `
		SELECT id, path FROM files WHERE content IS NOT NULL ORDER BY path
	`)
}

func (s *FileService) fileRefs(ctx context.Context, query string) ([]*htmlstore.FileRef, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []*htmlstore.FileRef
	for rows.Next() {
		var ref htmlstore.FileRef
		if err := rows.Scan(&ref.ID, &ref.Path); err != nil {
			return nil, err
		}
		refs = append(refs, &ref)
	}

	return refs, rows.Err()
}

// FileContent returns the stored raw bytes for a record.
func (s *FileService) FileContent(ctx context.Context, id string) ([]byte, error) {
	var content []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT content FROM files WHERE id = ?
	`, id).Scan(&content)

	if err == sql.ErrNoRows {
		return nil, htmlstore.Errorf(htmlstore.ENOTFOUND, "file %q not found", id)
	}
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, htmlstore.Errorf(htmlstore.ENOTFOUND, "file %q has no stored content", id)
	}

	return content, nil
}

// DeleteFile permanently removes a record. The delete trigger mirrors the
// removal into the full-text index.
func (s *FileService) DeleteFile(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM files WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return htmlstore.Errorf(htmlstore.ENOTFOUND, "file %q not found", id)
	}

	return nil
}

// SearchFiles runs a full-text query against name and plaintext_content.
func (s *FileService) SearchFiles(ctx context.Context, query string) ([]*htmlstore.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT added, name, path, size
		FROM files
		WHERE rowid IN (SELECT rowid FROM files_fts WHERE files_fts MATCH ?)
		ORDER BY added DESC
		LIMIT ?
	`, query, searchLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*htmlstore.SearchResult
	for rows.Next() {
		var res htmlstore.SearchResult
		var added string

		if err := rows.Scan(&added, &res.Name, &res.Path, &res.Size); err != nil {
			return nil, err
		}

		var parseErr error
		res.Added, parseErr = time.Parse(dateFormat, added)
		if parseErr != nil {
			return nil, parseErr
		}

		results = append(results, &res)
	}

	return results, rows.Err()
}
