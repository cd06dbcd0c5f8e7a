package dto

type CreateSiteRequest struct {
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	UseDrive bool   `json:"useDrive"`
}

type UpdateStorageRequest struct {
	Provider string `json:"provider"`
}
