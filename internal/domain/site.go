package domain

import "time"

type Site struct {
	Seq             int64           `gorm:"primaryKey;autoIncrement" json:"-"`
	ID              string          `gorm:"type:text;uniqueIndex:ux_sites_id" db:"id" json:"id"`
	UserID          string          `gorm:"type:text;index:ix_sites_user_id;not null" db:"user_id" json:"userId"`
	Name            string          `gorm:"type:text;not null" db:"name" json:"name"`
	Subdomain       string          `gorm:"type:text;uniqueIndex:ux_sites_subdomain" db:"subdomain" json:"subdomain"`
	CreatedAt       time.Time       `gorm:"not null" db:"created_at" json:"createdAt"`
	Visits          int64           `gorm:"not null;default:0" db:"visits" json:"visits"`
	Status          SiteStatus      `gorm:"type:text;not null" db:"status" json:"status"`
	StorageProvider StorageProvider `gorm:"type:text;not null" db:"storage_provider" json:"storageProvider"`
	// Size is a byte-count placeholder; new sites start around 1KB.
	Size int64 `gorm:"not null;default:0" db:"size" json:"size"`
}

func (Site) TableName() string { return "sites" }
