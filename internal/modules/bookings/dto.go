package bookings

import "time"

// BookingRequest is the raw field map for add/edit. Dates arrive as
// strings and go through the decoding step; total_sum is computed
// server-side from the room's nightly rate.
type BookingRequest struct {
	ClientID int64  `json:"client_id" validate:"required"`
	RoomID   int64  `json:"room_id" validate:"required"`
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	Status   string `json:"status"`
	Notes    string `json:"notes"`
}

// ListParams carries the parsed filter/sort/page query of GET /bookings.
type ListParams struct {
	Page     int
	PageSize int

	ID       int64
	ClientID int64
	RoomID   int64
	Status   string
	From     time.Time
	To       time.Time
	TotalMin float64
	TotalMax float64

	SortBy   string
	SortDesc bool
}
