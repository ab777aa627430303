package rooms

import "errors"

var (
	ErrNotFound    = errors.New("room not found")
	ErrNumberTaken = errors.New("room number already taken")
)
