package store

import (
	"context"

	"freehost/internal/domain"

	"gorm.io/gorm"
)

type VersionStore struct{ db *gorm.DB }

func (s *Store) Versions() *VersionStore { return &VersionStore{db: s.DB} }

// Append records a version. Versions are never deleted, not even when their
// site goes away.
func (v *VersionStore) Append(ctx context.Context, ver *domain.SiteVersion) error {
	if ver.ID == "" {
		ver.ID = domain.NewID()
	}
	return v.db.WithContext(ctx).Create(ver).Error
}

func (v *VersionStore) ListBySite(ctx context.Context, siteID string) ([]domain.SiteVersion, error) {
	var versions []domain.SiteVersion
	if err := v.db.WithContext(ctx).
		Where("site_id = ?", siteID).
		Order("seq ASC").
		Find(&versions).Error; err != nil {
		return nil, err
	}
	return versions, nil
}
