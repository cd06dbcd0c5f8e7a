package store

import (
	"context"

	"freehost/internal/domain"

	"gorm.io/gorm"
)

type SiteStore struct{ db *gorm.DB }

func (s *Store) Sites() *SiteStore { return &SiteStore{db: s.DB} }

func (st *SiteStore) Create(ctx context.Context, site *domain.Site) error {
	if site.ID == "" {
		site.ID = domain.NewID()
	}
	return st.db.WithContext(ctx).Create(site).Error
}

func (st *SiteStore) GetByID(ctx context.Context, id string) (*domain.Site, error) {
	var site domain.Site
	if err := st.db.WithContext(ctx).First(&site, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &site, nil
}

// ListByUser returns the user's sites in insertion order.
func (st *SiteStore) ListByUser(ctx context.Context, userID string) ([]domain.Site, error) {
	var sites []domain.Site
	if err := st.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("seq ASC").
		Find(&sites).Error; err != nil {
		return nil, err
	}
	return sites, nil
}

func (st *SiteStore) SubdomainTaken(ctx context.Context, subdomain string) (bool, error) {
	var count int64
	if err := st.db.WithContext(ctx).Model(&domain.Site{}).
		Where("subdomain = ?", subdomain).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SetStorageProvider flips the provider in place. The Drive-connection
// precondition is the caller's responsibility, not enforced here.
func (st *SiteStore) SetStorageProvider(ctx context.Context, siteID string, provider domain.StorageProvider) error {
	tx := st.db.WithContext(ctx).Model(&domain.Site{}).
		Where("id = ?", siteID).
		Update("storage_provider", provider)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
