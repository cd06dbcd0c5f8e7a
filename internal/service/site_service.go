package service

import (
	"context"

	"freehost/internal/domain"
	"freehost/internal/dto"
)

type SiteService interface {
	UserSites(ctx context.Context, userID string) ([]domain.Site, error)
	// CreateSite registers the site and seeds its index.html in one
	// transaction.
	CreateSite(ctx context.Context, r dto.CreateSiteRequest) (*domain.Site, error)
	// DeleteSite cascades to the site's files; versions are left behind.
	DeleteSite(ctx context.Context, siteID string) error
	// Site returns (nil, nil) when the id is unknown.
	Site(ctx context.Context, siteID string) (*domain.Site, error)
	// SetStorageProvider enforces the Drive-connection precondition before
	// touching the store.
	SetStorageProvider(ctx context.Context, siteID string, provider domain.StorageProvider) error
}
