package clients

import "errors"

var (
	ErrNotFound  = errors.New("client not found")
	ErrDuplicate = errors.New("identical client already exists")
	ErrBadFormat = errors.New("unsupported export format")
)
