package impl

import (
	"fmt"

	"freehost/internal/service"
)

var (
	ErrEmptyName       = fmt.Errorf("%w: empty name", service.ErrInvalidRequest)
	ErrEmptyEmail      = fmt.Errorf("%w: empty email", service.ErrInvalidRequest)
	ErrEmptyUserID     = fmt.Errorf("%w: empty userId", service.ErrInvalidRequest)
	ErrEmptySiteName   = fmt.Errorf("%w: empty site name", service.ErrInvalidRequest)
	ErrEmptyFileName   = fmt.Errorf("%w: empty file name", service.ErrInvalidRequest)
	ErrInvalidFileType = fmt.Errorf("%w: invalid file type", service.ErrInvalidRequest)
	ErrInvalidProvider = fmt.Errorf("%w: invalid storage provider", service.ErrInvalidRequest)
)
