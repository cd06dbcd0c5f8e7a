package impl

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"freehost/internal/domain"
	"freehost/internal/dto"
	"freehost/internal/events"
	"freehost/internal/idtoken"
	"freehost/internal/observability/metrics"
	"freehost/internal/store"
)

// Canned profile of the simulated Google OAuth exchange. Every Google sign-in
// resolves to this one account.
const (
	googleEmail     = "demo@gmail.com"
	googleName      = "Utilisateur Google"
	googleAvatarURL = "https://lh3.googleusercontent.com/a/default-user=s96-c"

	googleOAuthDelay = 1500 * time.Millisecond
	googleTokenTTL   = time.Hour
)

type AuthServiceImpl struct {
	store  *store.Store
	tokens *idtoken.Signer
	now    func() time.Time
	sleep  func(ctx context.Context, d time.Duration) error
}

func NewAuthServiceImpl(st *store.Store, tokens *idtoken.Signer) *AuthServiceImpl {
	return &AuthServiceImpl{
		store:  st,
		tokens: tokens,
		now:    time.Now,
		sleep:  sleepContext,
	}
}

// Register always creates a fresh account. Duplicate emails are allowed:
// there is no uniqueness check, and login resolves to the earliest match.
func (a *AuthServiceImpl) Register(ctx context.Context, r dto.RegisterRequest) (*domain.User, error) {
	if r.Name == "" {
		return nil, ErrEmptyName
	}
	if r.Email == "" {
		return nil, ErrEmptyEmail
	}

	now := a.now().UTC()
	u := &domain.User{
		ID:                domain.NewID(),
		Name:              r.Name,
		Email:             r.Email,
		IsGoogleConnected: false,
		CreatedAt:         now,
	}

	err := a.store.WithTx(ctx, func(tx *store.Store) error {
		if err := tx.Users().Create(ctx, u); err != nil {
			return err
		}
		sess := domain.SnapshotOf(*u, now)
		return tx.Sessions().Set(ctx, &sess)
	})
	if err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.Inc()
	slog.Info("user registered", "event", events.UserRegistered{UserID: u.ID, Email: u.Email, At: now})
	return u, nil
}

// Login looks the user up by email only; the password, if any, is ignored. A
// miss returns (nil, nil) so the caller can surface a generic failure.
func (a *AuthServiceImpl) Login(ctx context.Context, r dto.LoginRequest) (*domain.User, error) {
	if r.Email == "" {
		return nil, ErrEmptyEmail
	}

	u, err := a.store.Users().GetByEmail(ctx, r.Email)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			metrics.LoginsTotal.WithLabelValues("email", "failure").Inc()
			return nil, nil
		}
		return nil, err
	}

	sess := domain.SnapshotOf(*u, a.now().UTC())
	if err := a.store.Sessions().Set(ctx, &sess); err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("email", "success").Inc()
	slog.Info("user logged in", "user_id", u.ID)
	return u, nil
}

// GoogleLogin simulates the external OAuth round trip: wait out the provider
// latency, mint the canned id_token, then trust its claims the way a real
// callback would. The demo account is created on first sign-in and reused
// afterwards, always marked Drive-connected.
func (a *AuthServiceImpl) GoogleLogin(ctx context.Context) (*domain.User, error) {
	if err := a.sleep(ctx, googleOAuthDelay); err != nil {
		return nil, err
	}

	now := a.now().UTC()
	sub := "google_" + domain.NewID()

	raw, err := a.tokens.Sign(sub, googleEmail, googleName, googleAvatarURL, now, googleTokenTTL)
	if err != nil {
		return nil, err
	}
	claims, err := a.tokens.Parse(raw)
	if err != nil {
		return nil, err
	}

	var u *domain.User
	err = a.store.WithTx(ctx, func(tx *store.Store) error {
		existing, err := tx.Users().GetByEmail(ctx, claims.Email)
		switch {
		case err == nil:
			u = existing
			if !u.IsGoogleConnected {
				if err := tx.Users().SetGoogleConnected(ctx, u.ID, true); err != nil {
					return err
				}
				u.IsGoogleConnected = true
			}
		case errors.Is(err, store.ErrRecordNotFound):
			u = &domain.User{
				ID:                claims.Subject,
				Name:              claims.Name,
				Email:             claims.Email,
				AvatarURL:         claims.Picture,
				IsGoogleConnected: true,
				CreatedAt:         now,
			}
			if err := tx.Users().Create(ctx, u); err != nil {
				return err
			}
			metrics.UsersRegisteredTotal.Inc()
		default:
			return err
		}

		sess := domain.SnapshotOf(*u, now)
		return tx.Sessions().Set(ctx, &sess)
	})
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("google", "success").Inc()
	slog.Info("google login completed", "user_id", u.ID, "email", u.Email)
	return u, nil
}

// Logout clears the session pointer only; the user record stays valid.
func (a *AuthServiceImpl) Logout(ctx context.Context) error {
	return a.store.Sessions().Clear(ctx)
}

func (a *AuthServiceImpl) CurrentUser(ctx context.Context) (*domain.User, error) {
	sess, err := a.store.Sessions().Current(ctx)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	u := sess.User()
	return &u, nil
}

// SetGoogleConnection flips the Drive flag on the user row and on the session
// snapshot when that user is signed in, keeping the two copies consistent.
func (a *AuthServiceImpl) SetGoogleConnection(ctx context.Context, userID string, connect bool) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	err := a.store.WithTx(ctx, func(tx *store.Store) error {
		if err := tx.Users().SetGoogleConnected(ctx, userID, connect); err != nil {
			return err
		}
		return tx.Sessions().SetGoogleConnected(ctx, userID, connect)
	})
	if err != nil {
		return err
	}

	slog.Info("google connection changed",
		"event", events.GoogleConnectionChanged{UserID: userID, Connected: connect, At: a.now().UTC()})
	return nil
}
