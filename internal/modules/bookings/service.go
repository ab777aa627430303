package bookings

import (
	"context"
	"errors"
	"math"
	"time"

	"hotel/internal/domain"
	"hotel/internal/query"
	"hotel/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomReader
	clients  ClientReader
}

func NewService(bookings BookingRepository, rooms RoomReader, clients ClientReader) *Service {
	return &Service{bookings: bookings, rooms: rooms, clients: clients}
}

func (s *Service) compose(p ListParams) *query.Composer[*domain.Booking] {
	c := query.New[*domain.Booking](s.bookings)

	if p.ID > 0 {
		c.AddFilter(ByID(p.ID))
	}
	if p.ClientID > 0 {
		c.AddFilter(ByClientID(p.ClientID))
	}
	if p.RoomID > 0 {
		c.AddFilter(ByRoomID(p.RoomID))
	}
	if p.Status != "" {
		c.AddFilter(ByStatus(domain.BookingStatus(p.Status)))
	}
	if !p.From.IsZero() || !p.To.IsZero() {
		c.AddFilter(ByDateRange(p.From, p.To))
	}
	if p.TotalMin > 0 || p.TotalMax > 0 {
		c.AddFilter(ByTotalRange(p.TotalMin, p.TotalMax))
	}

	if less, ok := Sorters[p.SortBy]; ok {
		c.SetSorter(less, p.SortDesc)
	}
	return c
}

func (s *Service) List(ctx context.Context, p ListParams) ([]*domain.Booking, int, error) {
	c := s.compose(p)

	total, err := c.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	items, err := c.List(ctx, p.PageSize, p.Page)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return b, err
}

// IsRoomFree runs the raw overlap check: no active booking on the room
// intersects the candidate range. excludeID skips the booking being
// edited so it does not collide with itself.
func (s *Service) IsRoomFree(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeID int64) (bool, error) {
	cnt, err := s.bookings.CountOverlapping(ctx, roomID, checkIn, checkOut, excludeID)
	if err != nil {
		return false, err
	}
	return cnt == 0, nil
}

// price computes nightly rate x nights, rounded to cents.
func price(pricePerNight float64, nights int) float64 {
	total := pricePerNight * float64(nights)
	return math.Round(total*100) / 100
}

func (s *Service) build(ctx context.Context, req BookingRequest) (*domain.Booking, *domain.Room, domain.Errors) {
	fieldErrs := make(domain.Errors)

	checkIn, err := domain.ParseDate(req.CheckIn, "check_in")
	if err != nil {
		fieldErrs.AddErr(err)
	}
	checkOut, err := domain.ParseDate(req.CheckOut, "check_out")
	if err != nil {
		fieldErrs.AddErr(err)
	}
	if !fieldErrs.Empty() {
		return nil, nil, fieldErrs
	}

	b, errs := domain.NewBooking(domain.BookingFields{
		ClientID: req.ClientID,
		RoomID:   req.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   req.Status,
		Notes:    req.Notes,
	})
	if errs != nil {
		return nil, nil, errs
	}

	// Referential checks: both sides must exist before any write.
	clientExists, err := s.clients.Exists(ctx, b.ClientID)
	if err != nil {
		fieldErrs.Add("_", "store error")
		return nil, nil, fieldErrs
	}
	if !clientExists {
		fieldErrs.Add("client_id", "client not found")
	}

	room, err := s.rooms.GetByID(ctx, b.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fieldErrs.Add("room_id", "room not found")
		} else {
			fieldErrs.Add("_", "store error")
		}
		return nil, nil, fieldErrs
	}

	if !fieldErrs.Empty() {
		return nil, nil, fieldErrs
	}
	return b, room, nil
}

// Add creates a booking: referential checks, the overlap check against
// active bookings, then pricing from the room's nightly rate. The
// repository re-runs the overlap check inside the insert transaction.
func (s *Service) Add(ctx context.Context, req BookingRequest) (*domain.Booking, domain.Errors, error) {
	b, room, fieldErrs := s.build(ctx, req)
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	if !room.IsAvailable {
		errs := make(domain.Errors)
		errs.Add("room_id", "room is not available")
		return nil, errs, nil
	}

	free, err := s.IsRoomFree(ctx, b.RoomID, b.CheckIn, b.CheckOut, 0)
	if err != nil {
		return nil, nil, err
	}
	if !free {
		return nil, nil, ErrRoomBusy
	}

	b.TotalSum = price(room.PricePerNight, b.Nights())

	if err := s.bookings.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrRoomBusy) {
			return nil, nil, ErrRoomBusy
		}
		return nil, nil, err
	}
	return b, nil, nil
}

// Edit is a full field replacement. The total is recomputed only when
// the room or either date changed; an edit that touches none of those
// keeps the stored total. The booking's own id is excluded from the
// overlap check so it never collides with itself.
func (s *Service) Edit(ctx context.Context, id int64, req BookingRequest) (*domain.Booking, domain.Errors, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	b, room, fieldErrs := s.build(ctx, req)
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}
	b.ID = id
	b.CreatedAt = existing.CreatedAt

	priceInputsChanged := b.RoomID != existing.RoomID ||
		!b.CheckIn.Equal(existing.CheckIn) ||
		!b.CheckOut.Equal(existing.CheckOut)

	if priceInputsChanged {
		b.TotalSum = price(room.PricePerNight, b.Nights())
	} else {
		b.TotalSum = existing.TotalSum
	}

	if b.BlocksRoom() {
		free, err := s.IsRoomFree(ctx, b.RoomID, b.CheckIn, b.CheckOut, id)
		if err != nil {
			return nil, nil, err
		}
		if !free {
			return nil, nil, ErrRoomBusy
		}
	}

	ok, err := s.bookings.Update(ctx, b)
	if err != nil {
		if errors.Is(err, repository.ErrRoomBusy) {
			return nil, nil, ErrRoomBusy
		}
		return nil, nil, err
	}
	if !ok {
		return nil, nil, ErrNotFound
	}
	return b, nil, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ok, err := s.bookings.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Cancel transitions pending|confirmed -> cancelled.
func (s *Service) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.CanCancel() {
		return nil, ErrInvalidStatusTransition
	}

	ok, err := s.bookings.UpdateStatus(ctx, id, domain.BookingCancelled, domain.BookingPending, domain.BookingConfirmed)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidStatusTransition
	}
	return s.Get(ctx, id)
}

// Complete transitions confirmed -> completed.
func (s *Service) Complete(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.CanComplete() {
		return nil, ErrInvalidStatusTransition
	}

	ok, err := s.bookings.UpdateStatus(ctx, id, domain.BookingCompleted, domain.BookingConfirmed)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidStatusTransition
	}
	return s.Get(ctx, id)
}

// ForPeriod lists bookings whose stay intersects [from, to].
func (s *Service) ForPeriod(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	if !to.After(from) {
		return nil, &domain.ValidationError{Field: "to", Reason: "must be after from"}
	}
	return s.bookings.GetForPeriod(ctx, from, to)
}
