package service

import "errors"

var ErrInvalidRequest = errors.New("service: invalid request")
