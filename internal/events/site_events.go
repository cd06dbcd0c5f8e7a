package events

import "time"

type SiteCreated struct {
	SiteID    string    `json:"siteId"`
	UserID    string    `json:"userId"`
	Subdomain string    `json:"subdomain"`
	At        time.Time `json:"at"`
}

type SitePublished struct {
	SiteID   string    `json:"siteId"`
	Provider string    `json:"provider"`
	URL      string    `json:"url"`
	At       time.Time `json:"at"`
}
