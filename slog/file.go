// Package slog provides logging decorators for htmlstore services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/htmlstore"
)

// Ensure LoggingFileService implements htmlstore.FileService.
var _ htmlstore.FileService = (*LoggingFileService)(nil)

// LoggingFileService wraps a FileService with debug logging.
type LoggingFileService struct {
	next   htmlstore.FileService
	logger *slog.Logger
}

// NewLoggingFileService creates a new LoggingFileService.
func NewLoggingFileService(next htmlstore.FileService, logger *slog.Logger) *LoggingFileService {
	return &LoggingFileService{next: next, logger: logger}
}

// CreateFile delegates to the wrapped service and logs the operation.
func (s *LoggingFileService) CreateFile(ctx context.Context, file *htmlstore.File) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create file",
			"id", file.ID,
			"path", file.Path,
			"size", file.Size,
			"binary", file.Content != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateFile(ctx, file)
}

// FileExistsByPath delegates to the wrapped service and logs the operation.
func (s *LoggingFileService) FileExistsByPath(ctx context.Context, path string) (exists bool, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("file exists by path",
			"path", path,
			"exists", exists,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FileExistsByPath(ctx, path)
}

// FilesWithoutContent delegates to the wrapped service and logs the operation.
func (s *LoggingFileService) FilesWithoutContent(ctx context.Context) (refs []*htmlstore.FileRef, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("files without content",
			"count", len(refs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FilesWithoutContent(ctx)
}

// FilesWithContent delegates to the wrapped service and logs the operation.
func (s *LoggingFileService) FilesWithContent(ctx context.Context) (refs []*htmlstore.FileRef, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("files with content",
			"count", len(refs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FilesWithContent(ctx)
}

// FileContent delegates to the wrapped service and logs the operation.
func (s *LoggingFileService) FileContent(ctx context.Context, id string) (content []byte, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("file content",
			"id", id,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FileContent(ctx, id)
}

// DeleteFile delegates to the wrapped service and logs the operation.
func (s *LoggingFileService) DeleteFile(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete file",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteFile(ctx, id)
}

// SearchFiles delegates to the wrapped service and logs the operation.
func (s *LoggingFileService) SearchFiles(ctx context.Context, query string) (results []*htmlstore.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("search files",
			"query", query,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchFiles(ctx, query)
}
