package store

import (
	"context"

	"freehost/internal/domain"

	"gorm.io/gorm"
)

// DeleteSiteData removes the site record and every file owned by it, in one
// transaction, and returns counts of affected resources captured before
// deletion. Site versions are deliberately left behind.
func (s *Store) DeleteSiteData(ctx context.Context, siteID string) (map[string]int64, error) {
	deleted := map[string]int64{}

	err := s.WithTx(ctx, func(tx *Store) error {
		db := tx.DB.WithContext(ctx)

		count := func(label string, query *gorm.DB) error {
			var total int64
			if err := query.Count(&total).Error; err != nil {
				return err
			}
			deleted[label] = total
			return nil
		}

		if err := count("sites", db.Model(&domain.Site{}).Where("id = ?", siteID)); err != nil {
			return err
		}
		if err := count("files", db.Model(&domain.FileObject{}).Where("site_id = ?", siteID)); err != nil {
			return err
		}

		if err := db.Where("site_id = ?", siteID).Delete(&domain.FileObject{}).Error; err != nil {
			return err
		}

		return db.Where("id = ?", siteID).Delete(&domain.Site{}).Error
	})

	return deleted, err
}
