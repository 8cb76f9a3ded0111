package files

import (
	"minio-storage/core/filestore"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	catalog *Catalog
	handler *Handler
}

// NewFeature creates the files feature. db may be nil, which disables the catalog.
func NewFeature(store *filestore.Adapter, logger *zap.Logger, db *gorm.DB) *Feature {
	var catalog *Catalog
	if db != nil {
		catalog = NewCatalog(db)
	}
	svc := NewService(store, catalog, logger)
	return &Feature{catalog: catalog, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "files"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load migrates the catalog and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if f.catalog != nil {
		if err := f.catalog.Migrate(); err != nil {
			return err
		}
	}
	f.handler.RegisterRoutes(app)
	return nil
}
