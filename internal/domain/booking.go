package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

var bookingStatuses = map[BookingStatus]bool{
	BookingPending:   true,
	BookingConfirmed: true,
	BookingCancelled: true,
	BookingCompleted: true,
}

// MaxStayDays caps the length of a single stay.
const MaxStayDays = 30

type Booking struct {
	ID        int64         `json:"id"`
	ClientID  int64         `json:"client_id"`
	RoomID    int64         `json:"room_id"`
	CheckIn   time.Time     `json:"check_in"`
	CheckOut  time.Time     `json:"check_out"`
	TotalSum  float64       `json:"total_sum"`
	Status    BookingStatus `json:"status"`
	Notes     string        `json:"notes,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

type BookingFields struct {
	ClientID int64
	RoomID   int64
	CheckIn  time.Time
	CheckOut time.Time
	TotalSum float64
	Status   string
	Notes    string
}

func NewBooking(f BookingFields) (*Booking, Errors) {
	errs := make(Errors)

	status := BookingStatus(f.Status)
	if f.Status == "" {
		status = BookingConfirmed
	}

	b := &Booking{
		ClientID: f.ClientID,
		RoomID:   f.RoomID,
		CheckIn:  f.CheckIn,
		CheckOut: f.CheckOut,
		TotalSum: f.TotalSum,
		Status:   status,
		Notes:    f.Notes,
	}

	if f.ClientID <= 0 {
		errs.Add("client_id", "must be a positive id")
	}
	if f.RoomID <= 0 {
		errs.Add("room_id", "must be a positive id")
	}
	if !f.CheckOut.After(f.CheckIn) {
		errs.Add("check_out", "must be after check_in")
	} else if b.Nights() > MaxStayDays {
		errs.Add("check_out", "stay must not exceed 30 days")
	}
	if f.TotalSum < 0 {
		errs.Add("total_sum", "must not be negative")
	}
	if !bookingStatuses[status] {
		errs.Add("status", "must be one of: pending, confirmed, cancelled, completed")
	}

	if !errs.Empty() {
		return nil, errs
	}
	return b, nil
}

// Nights is the stay length in whole days.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// PricePerNight derives the nightly rate from the stored total.
func (b *Booking) PricePerNight() float64 {
	n := b.Nights()
	if n <= 0 {
		return 0
	}
	return b.TotalSum / float64(n)
}

// Overlaps applies the half-open interval intersection test: two stays
// on the same room collide iff each starts before the other ends.
// Adjacent stays (check_out == check_in) do not overlap.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckIn.Before(checkOut) && b.CheckOut.After(checkIn)
}

// BlocksRoom reports whether this booking participates in availability
// checks. Cancelled and completed stays do not hold the room.
func (b *Booking) BlocksRoom() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// CanCancel allows the pending|confirmed -> cancelled transition.
func (b *Booking) CanCancel() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// CanComplete allows the confirmed -> completed transition.
func (b *Booking) CanComplete() bool {
	return b.Status == BookingConfirmed
}
