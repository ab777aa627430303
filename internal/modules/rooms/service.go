package rooms

import (
	"context"
	"errors"
	"time"

	"hotel/internal/domain"
	"hotel/internal/query"
	"hotel/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	repo     RoomRepository
	bookings BookingReader
}

func NewService(repo RoomRepository, bookings BookingReader) *Service {
	return &Service{repo: repo, bookings: bookings}
}

func (s *Service) compose(p ListParams) *query.Composer[*domain.Room] {
	c := query.New[*domain.Room](s.repo)

	if p.ID > 0 {
		c.AddFilter(ByID(p.ID))
	}
	if p.Category != "" {
		c.AddFilter(ByCategory(domain.RoomCategory(p.Category)))
	}
	if p.CapacityMin > 0 || p.CapacityMax > 0 {
		c.AddFilter(ByCapacityRange(p.CapacityMin, p.CapacityMax))
	}
	if p.PriceMin > 0 || p.PriceMax > 0 {
		c.AddFilter(ByPriceRange(p.PriceMin, p.PriceMax))
	}
	if p.Available != nil {
		c.AddFilter(ByAvailability(*p.Available))
	}

	if less, ok := Sorters[p.SortBy]; ok {
		c.SetSorter(less, p.SortDesc)
	}
	return c
}

func (s *Service) List(ctx context.Context, p ListParams) ([]*domain.Room, int, error) {
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

func (s *Service) Get(ctx context.Context, id int64) (*domain.Room, error) {
	r, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return r, err
}

func (s *Service) Add(ctx context.Context, req RoomRequest) (*domain.Room, domain.Errors, error) {
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	r, fieldErrs := domain.NewRoom(domain.RoomFields{
		RoomNumber:    req.RoomNumber,
		Capacity:      req.Capacity,
		IsAvailable:   available,
		Category:      req.Category,
		PricePerNight: req.PricePerNight,
		Description:   req.Description,
	})
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	if err := s.repo.Create(ctx, r); err != nil {
		if errors.Is(err, repository.ErrRoomNumberTaken) {
			return nil, nil, ErrNumberTaken
		}
		return nil, nil, err
	}
	return r, nil, nil
}

func (s *Service) Edit(ctx context.Context, id int64, req RoomRequest) (*domain.Room, domain.Errors, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	available := existing.IsAvailable
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	r, fieldErrs := domain.NewRoom(domain.RoomFields{
		RoomNumber:    req.RoomNumber,
		Capacity:      req.Capacity,
		IsAvailable:   available,
		Category:      req.Category,
		PricePerNight: req.PricePerNight,
		Description:   req.Description,
	})
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}
	r.ID = id

	ok, err := s.repo.Update(ctx, r)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNumberTaken) {
			return nil, nil, ErrNumberTaken
		}
		return nil, nil, err
	}
	if !ok {
		return nil, nil, ErrNotFound
	}
	return r, nil, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// AvailableForDates lists rooms that are bookable for the range: the
// is_available flag is set and no active booking overlaps. This is the
// holistic check shown to users; booking writes run the raw overlap
// check on their own.
func (s *Service) AvailableForDates(ctx context.Context, checkIn, checkOut time.Time) ([]*domain.Room, error) {
	if !checkOut.After(checkIn) {
		return nil, &domain.ValidationError{Field: "check_out", Reason: "must be after check_in"}
	}

	booked, err := s.bookings.BookedRoomIDs(ctx, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Room, 0, len(all))
	for _, r := range all {
		if r.IsAvailable && !booked[r.ID] {
			out = append(out, r)
		}
	}
	return out, nil
}
