package files

import (
	"context"
	"fmt"
	"time"

	"minio-storage/core/filestore"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StoredFile is a catalog row for an object written through the API.
type StoredFile struct {
	ObjectKey    string    `gorm:"column:object_key;primaryKey;size:768" json:"key"`
	OriginalName string    `gorm:"column:original_name;size:768" json:"original_name"`
	ContentType  string    `gorm:"column:content_type;size:255" json:"content_type"`
	Size         int64     `gorm:"column:size" json:"size"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName pins the table name.
func (StoredFile) TableName() string {
	return "stored_files"
}

// Catalog records which original names map to which object keys. With the
// hashed naming policy it is the only place the original name survives.
type Catalog struct {
	db *gorm.DB
}

// NewCatalog wraps an open database.
func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// Migrate creates or updates the catalog table.
func (c *Catalog) Migrate() error {
	if err := c.db.AutoMigrate(&StoredFile{}); err != nil {
		return fmt.Errorf("failed to migrate catalog: %w", err)
	}
	return nil
}

// Record upserts the row for a stored object.
func (c *Catalog) Record(ctx context.Context, original string, res filestore.SaveResult) error {
	row := StoredFile{
		ObjectKey:    res.Name,
		OriginalName: original,
		ContentType:  res.ContentType,
		Size:         res.Size,
	}
	err := c.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "object_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"original_name", "content_type", "size", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to record %s: %w", res.Name, err)
	}
	return nil
}

// Forget removes the row for key. Missing rows are ignored.
func (c *Catalog) Forget(ctx context.Context, key string) error {
	err := c.db.WithContext(ctx).Where("object_key = ?", key).Delete(&StoredFile{}).Error
	if err != nil {
		return fmt.Errorf("failed to forget %s: %w", key, err)
	}
	return nil
}

// List returns catalog rows ordered by key, optionally filtered by original name.
func (c *Catalog) List(ctx context.Context, original string, limit int) ([]StoredFile, error) {
	q := c.db.WithContext(ctx).Order("object_key")
	if original != "" {
		q = q.Where("original_name = ?", original)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []StoredFile
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}
	return rows, nil
}
