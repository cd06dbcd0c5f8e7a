package store

import (
	"context"

	"freehost/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionStore struct{ db *gorm.DB }

func (s *Store) Sessions() *SessionStore { return &SessionStore{db: s.DB} }

// Set replaces the current-session snapshot.
func (ss *SessionStore) Set(ctx context.Context, sess *domain.Session) error {
	sess.ID = domain.CurrentSessionID
	return ss.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(sess).Error
}

func (ss *SessionStore) Current(ctx context.Context) (*domain.Session, error) {
	var sess domain.Session
	if err := ss.db.WithContext(ctx).First(&sess, "id = ?", domain.CurrentSessionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &sess, nil
}

// Clear drops the session pointer; the user record itself stays.
func (ss *SessionStore) Clear(ctx context.Context) error {
	return ss.db.WithContext(ctx).
		Where("id = ?", domain.CurrentSessionID).
		Delete(&domain.Session{}).Error
}

// SetGoogleConnected updates the snapshot copy when the given user holds the
// session. No-op otherwise.
func (ss *SessionStore) SetGoogleConnected(ctx context.Context, userID string, connected bool) error {
	return ss.db.WithContext(ctx).Model(&domain.Session{}).
		Where("id = ? AND user_id = ?", domain.CurrentSessionID, userID).
		Update("is_google_connected", connected).Error
}
