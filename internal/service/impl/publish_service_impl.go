package impl

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"freehost/internal/domain"
	"freehost/internal/dto"
	"freehost/internal/events"
	"freehost/internal/observability/metrics"
	"freehost/internal/store"

	"github.com/google/uuid"
)

const (
	publishBaseDelay    = 1500 * time.Millisecond
	publishPerFileDelay = 200 * time.Millisecond

	publishDomain = "freehost.app"

	driveAPIBase   = "https://www.googleapis.com/drive/v3"
	driveUploadURL = "https://www.googleapis.com/upload/drive/v3/files?uploadType=multipart"
)

// PublishServiceImpl simulates the provider deployment pipeline. Every run is
// a small state machine (idle -> publishing -> published | failed) with its
// own correlation id; the provider API traffic is emitted as structured log
// lines, never real requests.
type PublishServiceImpl struct {
	store *store.Store
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func NewPublishServiceImpl(st *store.Store) *PublishServiceImpl {
	return &PublishServiceImpl{store: st, now: time.Now, sleep: sleepContext}
}

// UploadDelay models upload time scaling linearly with payload size.
func (p *PublishServiceImpl) UploadDelay(fileCount int) time.Duration {
	return publishBaseDelay + time.Duration(fileCount)*publishPerFileDelay
}

// Publish reads the site and its files up front, waits out the simulated
// upload, then resolves by provider. A missing site resolves immediately with
// Success=false; concurrent runs for the same site are neither queued nor
// deduplicated, and a save landing during the delay is simply not part of the
// snapshot taken here.
func (p *PublishServiceImpl) Publish(ctx context.Context, siteID string) (*dto.PublishResult, error) {
	run := publishRun{id: uuid.New(), siteID: siteID, state: domain.PublishStateIdle}

	site, err := p.store.Sites().GetByID(ctx, siteID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			run.transition(domain.PublishStateFailed)
			metrics.PublishesTotal.WithLabelValues("error", "failure").Inc()
			return &dto.PublishResult{URL: "", Provider: "error", Success: false}, nil
		}
		return nil, err
	}
	files, err := p.store.Files().ListBySite(ctx, siteID)
	if err != nil {
		return nil, err
	}

	run.transition(domain.PublishStatePublishing)
	slog.Info("starting deployment",
		"run_id", run.id,
		"site", site.Name,
		"files", len(files),
		"storage", site.StorageProvider,
	)

	delay := p.UploadDelay(len(files))
	if err := p.sleep(ctx, delay); err != nil {
		run.transition(domain.PublishStateFailed)
		metrics.PublishesTotal.WithLabelValues(string(site.StorageProvider), "failure").Inc()
		return nil, err
	}

	var url string
	if site.StorageProvider == domain.ProviderGoogleDrive {
		url = p.publishToDrive(run, site, files)
	} else {
		url = p.publishToServer(run, site, files)
	}

	run.transition(domain.PublishStatePublished)
	metrics.PublishesTotal.WithLabelValues(string(site.StorageProvider), "success").Inc()
	metrics.PublishDurationSeconds.Observe(delay.Seconds())
	slog.Info("site published",
		"run_id", run.id,
		"event", events.SitePublished{SiteID: site.ID, Provider: string(site.StorageProvider), URL: url, At: p.now().UTC()})

	return &dto.PublishResult{
		URL:      url,
		Provider: string(site.StorageProvider),
		Success:  true,
	}, nil
}

// publishToDrive walks the Drive flow: create folder, upload each file,
// publicize the folder.
func (p *PublishServiceImpl) publishToDrive(run publishRun, site *domain.Site, files []domain.FileObject) string {
	folderName := site.Name + "-www"
	folderID := "folder_" + domain.NewID()

	slog.Info("drive: creating folder",
		"run_id", run.id,
		"call", "POST "+driveAPIBase+"/files",
		"name", folderName,
		"mime_type", "application/vnd.google-apps.folder",
		"folder_id", folderID,
	)

	for i, file := range files {
		slog.Info("drive: uploading file",
			"run_id", run.id,
			"call", "POST "+driveUploadURL,
			"index", i+1,
			"total", len(files),
			"name", file.Name,
			"mime_type", mimeForName(file.Name),
			"parents", folderID,
		)
	}

	slog.Info("drive: setting public permission",
		"run_id", run.id,
		"call", "POST "+driveAPIBase+"/files/"+folderID+"/permissions",
		"role", "reader",
		"type", "anyone",
	)

	return "https://drive.google.com/drive/folders/" + folderID + "?usp=sharing"
}

// publishToServer packages every file into one payload and posts it to the
// per-site deploy endpoint.
func (p *PublishServiceImpl) publishToServer(run publishRun, site *domain.Site, files []domain.FileObject) string {
	names := make([]string, 0, len(files))
	for _, file := range files {
		names = append(names, file.Name)
	}

	slog.Info("server: preparing payload", "run_id", run.id, "files", strings.Join(names, ", "))
	slog.Info("server: deploying", "run_id", run.id, "call", "POST /api/v1/deploy/"+site.ID)
	slog.Info("server: writing site root", "run_id", run.id, "path", "/var/www/"+site.Subdomain)
	slog.Info("server: generating ssl certificate", "run_id", run.id, "subdomain", site.Subdomain)

	return "https://" + site.Subdomain + "." + publishDomain
}

type publishRun struct {
	id     uuid.UUID
	siteID string
	state  domain.PublishState
}

func (r *publishRun) transition(to domain.PublishState) {
	slog.Debug("publish state", "run_id", r.id, "site_id", r.siteID, "from", r.state, "to", to)
	r.state = to
}

func mimeForName(name string) string {
	switch {
	case strings.HasSuffix(name, ".html"):
		return "text/html"
	case strings.HasSuffix(name, ".css"):
		return "text/css"
	case strings.HasSuffix(name, ".js"):
		return "application/javascript"
	default:
		return "text/plain"
	}
}
