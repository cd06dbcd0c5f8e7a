package dto

type CreateFileRequest struct {
	SiteID  string `json:"siteId"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"content,omitempty"`
}

type SaveFileRequest struct {
	ID      string `json:"id"`
	SiteID  string `json:"siteId"`
	Name    string `json:"name"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

type CreateVersionRequest struct {
	Label string `json:"label"`
}
