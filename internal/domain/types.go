package domain

type SiteStatus string

const (
	SiteStatusActive      SiteStatus = "active"
	SiteStatusMaintenance SiteStatus = "maintenance"
)

type StorageProvider string

const (
	ProviderLocal       StorageProvider = "local"
	ProviderGoogleDrive StorageProvider = "google_drive"
)

type FileType string

const (
	FileTypeHTML  FileType = "html"
	FileTypeCSS   FileType = "css"
	FileTypeJS    FileType = "js"
	FileTypeJSON  FileType = "json"
	FileTypeImage FileType = "image"
)

type PublishState string

const (
	PublishStateIdle       PublishState = "idle"
	PublishStatePublishing PublishState = "publishing"
	PublishStatePublished  PublishState = "published"
	PublishStateFailed     PublishState = "failed"
)
