package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"freehost/internal/domain"
	"freehost/internal/dto"
	"freehost/internal/events"
	"freehost/internal/observability/metrics"
	"freehost/internal/store"
)

const initialSiteSize = 1024 // ~1KB placeholder for a freshly seeded site

const subdomainAttempts = 5

// Seed page for every new site. Placeholders: title, heading, provider label.
const welcomePage = `<!DOCTYPE html>
<html lang="fr">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body { font-family: 'Segoe UI', sans-serif; text-align: center; padding: 50px; background: #f8fafc; color: #334155; }
        h1 { color: #2563eb; font-size: 2.5rem; margin-bottom: 1rem; }
        .card { background: white; padding: 2rem; border-radius: 1rem; box-shadow: 0 4px 6px -1px rgb(0 0 0 / 0.1); max-width: 600px; margin: 0 auto; }
        .badge { display: inline-block; background: #dbeafe; color: #1e40af; padding: 0.25rem 0.75rem; border-radius: 9999px; font-size: 0.875rem; font-weight: 600; margin-top: 1rem; }
    </style>
</head>
<body>
    <div class="card">
        <h1>Bienvenue sur %s</h1>
        <p>Ce site est hébergé gratuitement via <strong>%s</strong>.</p>
        <div class="badge">Site Actif 🚀</div>
    </div>
</body>
</html>`

type SiteServiceImpl struct {
	store *store.Store
	now   func() time.Time
}

func NewSiteServiceImpl(st *store.Store) *SiteServiceImpl {
	return &SiteServiceImpl{store: st, now: time.Now}
}

func (s *SiteServiceImpl) UserSites(ctx context.Context, userID string) ([]domain.Site, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	return s.store.Sites().ListByUser(ctx, userID)
}

// CreateSite registers the site and seeds its index.html inside one
// transaction, so a half-created site can never be observed. The owner must
// exist at creation time; ownership is not re-validated later.
func (s *SiteServiceImpl) CreateSite(ctx context.Context, r dto.CreateSiteRequest) (*domain.Site, error) {
	if r.UserID == "" {
		return nil, ErrEmptyUserID
	}
	if r.Name == "" {
		return nil, ErrEmptySiteName
	}

	if _, err := s.store.Users().GetByID(ctx, r.UserID); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	subdomain, err := s.uniqueSubdomain(ctx, r.Name)
	if err != nil {
		return nil, err
	}

	provider := domain.ProviderLocal
	providerLabel := "FreeHost Local"
	if r.UseDrive {
		provider = domain.ProviderGoogleDrive
		providerLabel = "Google Drive"
	}

	now := s.now().UTC()
	site := &domain.Site{
		ID:              domain.NewID(),
		UserID:          r.UserID,
		Name:            r.Name,
		Subdomain:       subdomain,
		CreatedAt:       now,
		Visits:          0,
		Status:          domain.SiteStatusActive,
		StorageProvider: provider,
		Size:            initialSiteSize,
	}

	seed := &domain.FileObject{
		ID:           domain.NewID(),
		SiteID:       site.ID,
		Name:         "index.html",
		Type:         domain.FileTypeHTML,
		Content:      fmt.Sprintf(welcomePage, r.Name, r.Name, providerLabel),
		LastModified: now,
	}

	err = s.store.WithTx(ctx, func(tx *store.Store) error {
		if err := tx.Sites().Create(ctx, site); err != nil {
			return err
		}
		return tx.Files().Create(ctx, seed)
	})
	if err != nil {
		return nil, err
	}

	metrics.SitesCreatedTotal.WithLabelValues(string(provider)).Inc()
	slog.Info("site created",
		"event", events.SiteCreated{SiteID: site.ID, UserID: site.UserID, Subdomain: site.Subdomain, At: now})
	return site, nil
}

// DeleteSite removes the site and all of its files. Site versions survive
// deletion. Deleting an unknown site is a no-op.
func (s *SiteServiceImpl) DeleteSite(ctx context.Context, siteID string) error {
	deleted, err := s.store.DeleteSiteData(ctx, siteID)
	if err != nil {
		return err
	}
	if deleted["sites"] > 0 {
		metrics.SitesDeletedTotal.Inc()
	}
	slog.Info("site deleted", "site_id", siteID, "sites", deleted["sites"], "files", deleted["files"])
	return nil
}

func (s *SiteServiceImpl) Site(ctx context.Context, siteID string) (*domain.Site, error) {
	site, err := s.store.Sites().GetByID(ctx, siteID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return site, nil
}

// SetStorageProvider guards the google_drive transition: the owning user must
// have Drive connected. The store write itself stays unguarded; this is the
// single call site responsible for the check.
func (s *SiteServiceImpl) SetStorageProvider(ctx context.Context, siteID string, provider domain.StorageProvider) error {
	if provider != domain.ProviderLocal && provider != domain.ProviderGoogleDrive {
		return ErrInvalidProvider
	}

	site, err := s.store.Sites().GetByID(ctx, siteID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return domain.ErrSiteNotFound
		}
		return err
	}

	if provider == domain.ProviderGoogleDrive {
		owner, err := s.store.Users().GetByID(ctx, site.UserID)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return err
		}
		if !owner.IsGoogleConnected {
			return domain.ErrDriveNotConnected
		}
	}

	return s.store.Sites().SetStorageProvider(ctx, siteID, provider)
}

// uniqueSubdomain lowercases the name, maps every non-alphanumeric rune to a
// dash and appends a 4-character token, retrying while the registry already
// holds the result.
func (s *SiteServiceImpl) uniqueSubdomain(ctx context.Context, name string) (string, error) {
	slug := slugify(name)
	for i := 0; i < subdomainAttempts; i++ {
		candidate := slug + "-" + domain.NewToken(4)
		taken, err := s.store.Sites().SubdomainTaken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free subdomain for %q after %d attempts", slug, subdomainAttempts)
}

func slugify(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '-'
	}, strings.ToLower(name))
}
