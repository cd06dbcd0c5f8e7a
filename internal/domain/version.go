package domain

import "time"

// SiteVersion is appended on demand and occasionally on save. The read path is
// stubbed to fixed entries and ignores SiteID; see FileService.Versions.
type SiteVersion struct {
	Seq       int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	ID        string    `gorm:"type:text;uniqueIndex:ux_versions_id" db:"id" json:"id"`
	SiteID    string    `gorm:"type:text;index:ix_versions_site_id" db:"site_id" json:"-"`
	Timestamp time.Time `gorm:"not null" db:"timestamp" json:"timestamp"`
	Label     string    `gorm:"type:text;not null" db:"label" json:"label"`
}

func (SiteVersion) TableName() string { return "site_versions" }
