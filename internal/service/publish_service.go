package service

import (
	"context"
	"time"

	"freehost/internal/dto"
)

type PublishService interface {
	// Publish runs the simulated deployment for the site and blocks for the
	// whole upload delay. A missing site resolves to Success=false without an
	// error; callers must check the flag.
	Publish(ctx context.Context, siteID string) (*dto.PublishResult, error)
	// UploadDelay is the simulated latency for a site with the given number
	// of files.
	UploadDelay(fileCount int) time.Duration
}
