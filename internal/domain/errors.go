package domain

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrSiteNotFound      = errors.New("site not found")
	ErrFileNotFound      = errors.New("file not found")
	ErrDriveNotConnected = errors.New("google drive not connected")
)
