package domain

import "time"

type User struct {
	// Seq preserves insertion order; lookups by email return the earliest match.
	Seq               int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	ID                string    `gorm:"type:text;uniqueIndex:ux_users_id" db:"id" json:"id"`
	Name              string    `gorm:"type:text;not null" db:"name" json:"name"`
	Email             string    `gorm:"type:text;index:ix_users_email" db:"email" json:"email"`
	AvatarURL         string    `gorm:"type:text" db:"avatar_url" json:"avatarUrl,omitempty"`
	IsGoogleConnected bool      `gorm:"not null;default:false" db:"is_google_connected" json:"isGoogleConnected"`
	CreatedAt         time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
}

func (User) TableName() string { return "users" }
