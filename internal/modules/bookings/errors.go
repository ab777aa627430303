package bookings

import "errors"

var (
	ErrNotFound                = errors.New("booking not found")
	ErrRoomBusy                = errors.New("room already booked for these dates")
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")
)
