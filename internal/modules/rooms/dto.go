package rooms

// RoomRequest is the raw field map for add/edit.
type RoomRequest struct {
	RoomNumber    string  `json:"room_number" validate:"required"`
	Capacity      int     `json:"capacity" validate:"required"`
	IsAvailable   *bool   `json:"is_available"`
	Category      string  `json:"category" validate:"required"`
	PricePerNight float64 `json:"price_per_night" validate:"required"`
	Description   string  `json:"description"`
}

// ListParams carries the parsed filter/sort/page query of GET /rooms.
type ListParams struct {
	Page     int
	PageSize int

	ID          int64
	Category    string
	CapacityMin int
	CapacityMax int
	PriceMin    float64
	PriceMax    float64
	Available   *bool

	SortBy   string
	SortDesc bool
}
