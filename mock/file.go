// Package mock provides mock implementations of htmlstore interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/htmlstore"
)

var _ htmlstore.FileService = (*FileService)(nil)

// FileService is a mock implementation of htmlstore.FileService.
type FileService struct {
	CreateFileFn          func(ctx context.Context, file *htmlstore.File) error
	FileExistsByPathFn    func(ctx context.Context, path string) (bool, error)
	FilesWithoutContentFn func(ctx context.Context) ([]*htmlstore.FileRef, error)
	FilesWithContentFn    func(ctx context.Context) ([]*htmlstore.FileRef, error)
	FileContentFn         func(ctx context.Context, id string) ([]byte, error)
	DeleteFileFn          func(ctx context.Context, id string) error
	SearchFilesFn         func(ctx context.Context, query string) ([]*htmlstore.SearchResult, error)
}

func (s *FileService) CreateFile(ctx context.Context, file *htmlstore.File) error {
	return s.CreateFileFn(ctx, file)
}

func (s *FileService) FileExistsByPath(ctx context.Context, path string) (bool, error) {
	return s.FileExistsByPathFn(ctx, path)
}

func (s *FileService) FilesWithoutContent(ctx context.Context) ([]*htmlstore.FileRef, error) {
	return s.FilesWithoutContentFn(ctx)
}

func (s *FileService) FilesWithContent(ctx context.Context) ([]*htmlstore.FileRef, error) {
	return s.FilesWithContentFn(ctx)
}

func (s *FileService) FileContent(ctx context.Context, id string) ([]byte, error) {
	return s.FileContentFn(ctx, id)
}

func (s *FileService) DeleteFile(ctx context.Context, id string) error {
	return s.DeleteFileFn(ctx, id)
}

func (s *FileService) SearchFiles(ctx context.Context, query string) ([]*htmlstore.SearchResult, error) {
	return s.SearchFilesFn(ctx, query)
}
