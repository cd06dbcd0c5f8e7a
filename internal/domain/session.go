package domain

import "time"

// CurrentSessionID keys the single session row; there is at most one
// authenticated user at a time.
const CurrentSessionID = "current"

// Session holds a denormalized snapshot of the signed-in user, not a foreign
// key. The snapshot and the user row must be kept consistent when the
// connection flag changes (see AuthService.SetGoogleConnection).
type Session struct {
	ID                string    `gorm:"type:text;primaryKey" db:"id" json:"-"`
	UserID            string    `gorm:"type:text;not null" db:"user_id" json:"userId"`
	Name              string    `gorm:"type:text;not null" db:"name" json:"name"`
	Email             string    `gorm:"type:text;not null" db:"email" json:"email"`
	AvatarURL         string    `gorm:"type:text" db:"avatar_url" json:"avatarUrl,omitempty"`
	IsGoogleConnected bool      `gorm:"not null;default:false" db:"is_google_connected" json:"isGoogleConnected"`
	CreatedAt         time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
}

func (Session) TableName() string { return "sessions" }

// User rebuilds the snapshot as a User value for callers that want the
// session holder without touching the users table.
func (s Session) User() User {
	return User{
		ID:                s.UserID,
		Name:              s.Name,
		Email:             s.Email,
		AvatarURL:         s.AvatarURL,
		IsGoogleConnected: s.IsGoogleConnected,
	}
}

// SnapshotOf builds the session row for a user.
func SnapshotOf(u User, at time.Time) Session {
	return Session{
		ID:                CurrentSessionID,
		UserID:            u.ID,
		Name:              u.Name,
		Email:             u.Email,
		AvatarURL:         u.AvatarURL,
		IsGoogleConnected: u.IsGoogleConnected,
		CreatedAt:         at,
	}
}
