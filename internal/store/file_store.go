package store

import (
	"context"

	"freehost/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FileStore struct{ db *gorm.DB }

func (s *Store) Files() *FileStore { return &FileStore{db: s.DB} }

func (f *FileStore) Create(ctx context.Context, file *domain.FileObject) error {
	if file.ID == "" {
		file.ID = domain.NewID()
	}
	return f.db.WithContext(ctx).Create(file).Error
}

// Upsert writes the file by ID, inserting when it does not exist yet.
func (f *FileStore) Upsert(ctx context.Context, file *domain.FileObject) error {
	if file.ID == "" {
		file.ID = domain.NewID()
	}
	return f.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"site_id", "name", "content", "type", "last_modified"}),
		}).
		Create(file).Error
}

func (f *FileStore) GetByID(ctx context.Context, id string) (*domain.FileObject, error) {
	var file domain.FileObject
	if err := f.db.WithContext(ctx).First(&file, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &file, nil
}

// ListBySite returns a site's files in insertion order.
func (f *FileStore) ListBySite(ctx context.Context, siteID string) ([]domain.FileObject, error) {
	var files []domain.FileObject
	if err := f.db.WithContext(ctx).
		Where("site_id = ?", siteID).
		Order("seq ASC").
		Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (f *FileStore) Delete(ctx context.Context, fileID string) error {
	return f.db.WithContext(ctx).
		Where("id = ?", fileID).
		Delete(&domain.FileObject{}).Error
}
