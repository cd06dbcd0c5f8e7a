package domain

import "time"

type FileObject struct {
	Seq    int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	ID     string `gorm:"type:text;uniqueIndex:ux_files_id" db:"id" json:"id"`
	SiteID string `gorm:"type:text;index:ix_files_site_id;not null" db:"site_id" json:"siteId"`
	Name   string `gorm:"type:text;not null" db:"name" json:"name"`
	// Content is raw text; image files carry a placeholder, not real bytes.
	Content      string    `gorm:"type:text" db:"content" json:"content"`
	Type         FileType  `gorm:"type:text;not null" db:"type" json:"type"`
	LastModified time.Time `gorm:"not null" db:"last_modified" json:"lastModified"`
}

func (FileObject) TableName() string { return "files" }
