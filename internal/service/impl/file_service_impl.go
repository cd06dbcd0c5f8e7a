package impl

import (
	"context"
	"errors"
	"time"

	"freehost/internal/domain"
	"freehost/internal/dto"
	"freehost/internal/observability/metrics"
	"freehost/internal/store"
)

// autoSnapshotThreshold: saves with rand() above it append an auto-save
// version, roughly 3 saves out of 10.
const autoSnapshotThreshold = 0.7

type FileServiceImpl struct {
	store *store.Store
	now   func() time.Time
	rand  func() float64
}

func NewFileServiceImpl(st *store.Store) *FileServiceImpl {
	return &FileServiceImpl{store: st, now: time.Now, rand: randomFloat}
}

func (f *FileServiceImpl) Files(ctx context.Context, siteID string) ([]domain.FileObject, error) {
	return f.store.Files().ListBySite(ctx, siteID)
}

// SaveFile upserts by id, stamping LastModified, and returns the stamped
// record. Last writer wins: there is no version check on save. Occasionally
// an auto-save version is appended alongside.
func (f *FileServiceImpl) SaveFile(ctx context.Context, r dto.SaveFileRequest) (*domain.FileObject, error) {
	if r.Name == "" {
		return nil, ErrEmptyFileName
	}
	ftype, ok := parseFileType(r.Type)
	if !ok {
		return nil, ErrInvalidFileType
	}

	now := f.now().UTC()
	file := &domain.FileObject{
		ID:           r.ID,
		SiteID:       r.SiteID,
		Name:         r.Name,
		Content:      r.Content,
		Type:         ftype,
		LastModified: now,
	}
	if err := f.store.Files().Upsert(ctx, file); err != nil {
		return nil, err
	}

	metrics.FilesSavedTotal.Inc()

	if f.rand() > autoSnapshotThreshold {
		ver := &domain.SiteVersion{
			SiteID:    r.SiteID,
			Timestamp: now,
			Label:     "Auto-save " + now.Format("15:04:05"),
		}
		if err := f.store.Versions().Append(ctx, ver); err != nil {
			return nil, err
		}
	}

	return file, nil
}

// CreateFile adds a file to an existing site, filling in a type-appropriate
// default body when no content is given.
func (f *FileServiceImpl) CreateFile(ctx context.Context, r dto.CreateFileRequest) (*domain.FileObject, error) {
	if r.Name == "" {
		return nil, ErrEmptyFileName
	}
	ftype, ok := parseFileType(r.Type)
	if !ok {
		return nil, ErrInvalidFileType
	}
	if _, err := f.store.Sites().GetByID(ctx, r.SiteID); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, domain.ErrSiteNotFound
		}
		return nil, err
	}

	content := r.Content
	if content == "" {
		content = defaultBody(ftype)
	}

	file := &domain.FileObject{
		ID:           domain.NewID(),
		SiteID:       r.SiteID,
		Name:         r.Name,
		Content:      content,
		Type:         ftype,
		LastModified: f.now().UTC(),
	}
	if err := f.store.Files().Create(ctx, file); err != nil {
		return nil, err
	}
	return file, nil
}

// DeleteFile is a no-op for unknown ids.
func (f *FileServiceImpl) DeleteFile(ctx context.Context, fileID string) error {
	return f.store.Files().Delete(ctx, fileID)
}

func (f *FileServiceImpl) CreateVersion(ctx context.Context, siteID, label string) (*domain.SiteVersion, error) {
	ver := &domain.SiteVersion{
		SiteID:    siteID,
		Timestamp: f.now().UTC(),
		Label:     label,
	}
	if err := f.store.Versions().Append(ctx, ver); err != nil {
		return nil, err
	}
	return ver, nil
}

// Versions returns the same two canned entries for every site. Appended
// versions do carry their site id, but the read path does not serve them yet;
// switching to real per-site history is a deliberate, separate change.
func (f *FileServiceImpl) Versions(ctx context.Context, siteID string) ([]domain.SiteVersion, error) {
	now := f.now().UTC()
	return []domain.SiteVersion{
		{ID: "v1", Timestamp: now.Add(-24 * time.Hour), Label: "Initial Commit"},
		{ID: "v2", Timestamp: now.Add(-time.Hour), Label: "Style update"},
	}, nil
}

func parseFileType(s string) (domain.FileType, bool) {
	switch domain.FileType(s) {
	case domain.FileTypeHTML, domain.FileTypeCSS, domain.FileTypeJS, domain.FileTypeJSON, domain.FileTypeImage:
		return domain.FileType(s), true
	default:
		return "", false
	}
}

func defaultBody(t domain.FileType) string {
	switch t {
	case domain.FileTypeHTML:
		return "<h1>New Page</h1>"
	case domain.FileTypeCSS:
		return "body { background: white; }"
	default:
		return "// Javascript code"
	}
}
