package files

import (
	"context"
	"io"

	"minio-storage/core/filestore"
	"minio-storage/core/logger"

	"go.uber.org/zap"
)

// Service exposes the file store to HTTP handlers and keeps the catalog in sync.
type Service struct {
	store   *filestore.Adapter
	catalog *Catalog
	logger  *zap.Logger
}

// NewService creates a new files service. catalog may be nil.
func NewService(store *filestore.Adapter, catalog *Catalog, logger *zap.Logger) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

// Upload saves content under name and records stored objects in the catalog.
// A catalog failure is logged; the object itself is already stored.
func (s *Service) Upload(ctx context.Context, name string, content filestore.Content) (filestore.SaveResult, error) {
	res, err := s.store.Save(ctx, name, content)
	if err != nil || !res.Stored() {
		return res, err
	}

	l := logger.ForObject(s.logger, s.store.Bucket(), res.Name)
	l.Debug("Object stored", zap.String("original", name), zap.String("content_type", res.ContentType))

	if s.catalog != nil {
		if err := s.catalog.Record(ctx, name, res); err != nil {
			l.Warn("Catalog record failed", zap.Error(err))
		}
	}
	return res, nil
}

// Fetch returns the metadata and content of name. The caller closes the reader.
func (s *Service) Fetch(ctx context.Context, name string) (filestore.Entry, io.ReadCloser, error) {
	return s.store.OpenEntry(ctx, name)
}

// Exists reports whether name is stored.
func (s *Service) Exists(ctx context.Context, name string) (bool, error) {
	return s.store.Exists(ctx, name)
}

// Size returns the stored size of name.
func (s *Service) Size(ctx context.Context, name string) (int64, error) {
	return s.store.Size(ctx, name)
}

// URL returns the public URL of name.
func (s *Service) URL(name string) string {
	return s.store.URL(name)
}

// Remove deletes name and its catalog row.
func (s *Service) Remove(ctx context.Context, name string) error {
	if err := s.store.Delete(ctx, name); err != nil {
		return err
	}
	if s.catalog != nil {
		if err := s.catalog.Forget(ctx, filestore.NormalizeName(name)); err != nil {
			s.logger.Warn("Catalog forget failed", zap.String("key", name), zap.Error(err))
		}
	}
	return nil
}

// List returns stored objects under prefix matching pattern.
func (s *Service) List(ctx context.Context, prefix, pattern string) ([]filestore.Entry, error) {
	return s.store.List(ctx, prefix, pattern)
}

// Catalog returns catalog rows, or ErrCatalogDisabled without a database.
func (s *Service) Catalog(ctx context.Context, original string, limit int) ([]StoredFile, error) {
	if s.catalog == nil {
		return nil, ErrCatalogDisabled
	}
	return s.catalog.List(ctx, original, limit)
}
