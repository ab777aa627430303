package rooms

import (
	"context"
	"testing"
	"time"

	"hotel/internal/domain"
	"hotel/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) GetAll(ctx context.Context) ([]*domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoomRepository) Create(ctx context.Context, r *domain.Room) error {
	args := m.Called(ctx, r)
	if r != nil {
		r.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRoomRepository) Update(ctx context.Context, r *domain.Room) (bool, error) {
	args := m.Called(ctx, r)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoomRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) BookedRoomIDs(ctx context.Context, checkIn, checkOut time.Time) (map[int64]bool, error) {
	args := m.Called(ctx, checkIn, checkOut)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]bool), args.Error(1)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestService_Add_NumberTaken(t *testing.T) {
	repo := new(MockRoomRepository)
	bookings := new(MockBookingReader)

	repo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrRoomNumberTaken)

	service := NewService(repo, bookings)

	_, fieldErrs, err := service.Add(context.Background(), RoomRequest{
		RoomNumber:    "101",
		Capacity:      2,
		Category:      "standard",
		PricePerNight: 10000,
	})

	assert.Nil(t, fieldErrs)
	assert.ErrorIs(t, err, ErrNumberTaken)
}

func TestService_Add_DefaultsToAvailable(t *testing.T) {
	repo := new(MockRoomRepository)
	bookings := new(MockBookingReader)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, bookings)

	r, fieldErrs, err := service.Add(context.Background(), RoomRequest{
		RoomNumber:    "101",
		Capacity:      2,
		Category:      "standard",
		PricePerNight: 10000,
	})

	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	assert.True(t, r.IsAvailable)
}

func TestService_Add_FieldErrorsSkipStore(t *testing.T) {
	repo := new(MockRoomRepository)
	bookings := new(MockBookingReader)
	service := NewService(repo, bookings)

	_, fieldErrs, err := service.Add(context.Background(), RoomRequest{
		RoomNumber:    "10A",
		Capacity:      0,
		Category:      "penthouse",
		PricePerNight: -1,
	})

	require.NoError(t, err)
	require.NotNil(t, fieldErrs)
	assert.Contains(t, fieldErrs, "room_number")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_AvailableForDates(t *testing.T) {
	repo := new(MockRoomRepository)
	bookings := new(MockBookingReader)

	all := []*domain.Room{
		{ID: 1, RoomNumber: "101", IsAvailable: true},
		{ID: 2, RoomNumber: "102", IsAvailable: true},
		{ID: 3, RoomNumber: "103", IsAvailable: false}, // under maintenance
	}
	repo.On("GetAll", mock.Anything).Return(all, nil)
	bookings.On("BookedRoomIDs", mock.Anything, day(2026, 9, 10), day(2026, 9, 13)).
		Return(map[int64]bool{2: true}, nil)

	service := NewService(repo, bookings)

	rooms, err := service.AvailableForDates(context.Background(), day(2026, 9, 10), day(2026, 9, 13))
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, int64(1), rooms[0].ID)
}

func TestService_AvailableForDates_RejectsInvertedRange(t *testing.T) {
	repo := new(MockRoomRepository)
	bookings := new(MockBookingReader)
	service := NewService(repo, bookings)

	_, err := service.AvailableForDates(context.Background(), day(2026, 9, 13), day(2026, 9, 10))
	assert.Error(t, err)
	bookings.AssertNotCalled(t, "BookedRoomIDs", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_List_FiltersByCategoryAndPrice(t *testing.T) {
	repo := new(MockRoomRepository)
	bookings := new(MockBookingReader)

	repo.On("GetAll", mock.Anything).Return([]*domain.Room{
		{ID: 1, Category: "standard", PricePerNight: 12000, Capacity: 2},
		{ID: 2, Category: "suite", PricePerNight: 35000, Capacity: 2},
		{ID: 3, Category: "standard", PricePerNight: 9000, Capacity: 3},
	}, nil)

	service := NewService(repo, bookings)

	items, total, err := service.List(context.Background(), ListParams{
		Category: "standard",
		PriceMax: 10000,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, int64(3), items[0].ID)
}
