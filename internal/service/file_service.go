package service

import (
	"context"

	"freehost/internal/domain"
	"freehost/internal/dto"
)

type FileService interface {
	Files(ctx context.Context, siteID string) ([]domain.FileObject, error)
	// SaveFile upserts by id and stamps LastModified.
	SaveFile(ctx context.Context, r dto.SaveFileRequest) (*domain.FileObject, error)
	CreateFile(ctx context.Context, r dto.CreateFileRequest) (*domain.FileObject, error)
	DeleteFile(ctx context.Context, fileID string) error
	CreateVersion(ctx context.Context, siteID, label string) (*domain.SiteVersion, error)
	// Versions currently ignores siteID and returns two fixed stub entries.
	// Per-site history is recorded by CreateVersion but not read back yet.
	Versions(ctx context.Context, siteID string) ([]domain.SiteVersion, error)
}
