package domain

type RoomCategory string

const (
	RoomStandard   RoomCategory = "standard"
	RoomSuite      RoomCategory = "suite"
	RoomEconomy    RoomCategory = "economy"
	RoomStudio     RoomCategory = "studio"
	RoomApartments RoomCategory = "apartments"
)

var roomCategories = map[RoomCategory]bool{
	RoomStandard:   true,
	RoomSuite:      true,
	RoomEconomy:    true,
	RoomStudio:     true,
	RoomApartments: true,
}

type Room struct {
	ID            int64        `json:"id"`
	RoomNumber    string       `json:"room_number"`
	Capacity      int          `json:"capacity"`
	IsAvailable   bool         `json:"is_available"`
	Category      RoomCategory `json:"category"`
	PricePerNight float64      `json:"price_per_night"`
	Description   string       `json:"description,omitempty"`
}

type RoomFields struct {
	RoomNumber    string
	Capacity      int
	IsAvailable   bool
	Category      string
	PricePerNight float64
	Description   string
}

func NewRoom(f RoomFields) (*Room, Errors) {
	errs := make(Errors)
	r := &Room{
		Capacity:      f.Capacity,
		IsAvailable:   f.IsAvailable,
		Category:      RoomCategory(f.Category),
		PricePerNight: f.PricePerNight,
		Description:   f.Description,
	}

	var err error
	if r.RoomNumber, err = ValidateRoomNumber(f.RoomNumber, "room_number"); err != nil {
		errs.AddErr(err)
	}
	if f.Capacity < 1 || f.Capacity > 10 {
		errs.Add("capacity", "must be between 1 and 10")
	}
	if !roomCategories[r.Category] {
		errs.Add("category", "must be one of: standard, suite, economy, studio, apartments")
	}
	if f.PricePerNight <= 0 {
		errs.Add("price_per_night", "must be positive")
	}

	if !errs.Empty() {
		return nil, errs
	}
	return r, nil
}
