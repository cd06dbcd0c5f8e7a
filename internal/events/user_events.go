package events

import "time"

type UserRegistered struct {
	UserID string    `json:"userId"`
	Email  string    `json:"email"`
	At     time.Time `json:"at"`
}

type GoogleConnectionChanged struct {
	UserID    string    `json:"userId"`
	Connected bool      `json:"connected"`
	At        time.Time `json:"at"`
}
