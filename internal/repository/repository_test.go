package repository

import (
	"context"
	"testing"
	"time"

	"hotel/internal/database"
	"hotel/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedClient(t *testing.T, repo *ClientRepository) *domain.Client {
	c, errs := domain.NewClient(domain.ClientFields{
		Surname: "Иванов", Name: "Пётр", Phone: "+77771234567",
	})
	require.Nil(t, errs)
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func seedRoom(t *testing.T, repo *RoomRepository, number string) *domain.Room {
	r, errs := domain.NewRoom(domain.RoomFields{
		RoomNumber: number, Capacity: 2, IsAvailable: true,
		Category: "standard", PricePerNight: 1000,
	})
	require.Nil(t, errs)
	require.NoError(t, repo.Create(context.Background(), r))
	return r
}

func TestClientRepository_CRUDAndDuplicates(t *testing.T) {
	db := testDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	c := seedClient(t, repo)
	require.NotZero(t, c.ID)

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Иванов", got.Surname)

	// Identical tuple is a duplicate; excluding the row itself is not.
	dup, err := repo.HasDuplicate(ctx, c, 0)
	require.NoError(t, err)
	assert.True(t, dup)

	dup, err = repo.HasDuplicate(ctx, c, c.ID)
	require.NoError(t, err)
	assert.False(t, dup)

	exists, err := repo.Exists(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	ok, err := repo.Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClientRepository_GetPage(t *testing.T) {
	db := testDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	surnames := []string{"Ахметова", "Борисов", "Васильев", "Громова", "Дмитриев"}
	for i, s := range surnames {
		c, errs := domain.NewClient(domain.ClientFields{
			Surname: s, Name: "Тест", Phone: "+7777000000" + string(rune('0'+i)),
		})
		require.Nil(t, errs)
		require.NoError(t, repo.Create(ctx, c))
	}

	page, err := repo.GetPage(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Васильев", page[0].Surname)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
}

func TestRoomRepository_NumberUniqueness(t *testing.T) {
	db := testDB(t)
	repo := NewRoomRepository(db)
	ctx := context.Background()

	first := seedRoom(t, repo, "101")

	clash, errs := domain.NewRoom(domain.RoomFields{
		RoomNumber: "101", Capacity: 3, IsAvailable: true,
		Category: "suite", PricePerNight: 2000,
	})
	require.Nil(t, errs)
	assert.ErrorIs(t, repo.Create(ctx, clash), ErrRoomNumberTaken)

	// Editing a room to its own number is allowed.
	first.Capacity = 4
	ok, err := repo.Update(ctx, first)
	require.NoError(t, err)
	assert.True(t, ok)

	price, err := repo.GetPriceByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, price)
}

func TestBookingRepository_OverlapGuard(t *testing.T) {
	db := testDB(t)
	clientRepo := NewClientRepository(db)
	roomRepo := NewRoomRepository(db)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	c := seedClient(t, clientRepo)
	room := seedRoom(t, roomRepo, "205")

	first, errs := domain.NewBooking(domain.BookingFields{
		ClientID: c.ID, RoomID: room.ID,
		CheckIn: day(2026, 9, 10), CheckOut: day(2026, 9, 13),
		TotalSum: 3000,
	})
	require.Nil(t, errs)
	require.NoError(t, repo.Create(ctx, first))

	// Intersecting insert is rejected inside the transaction.
	clash, errs := domain.NewBooking(domain.BookingFields{
		ClientID: c.ID, RoomID: room.ID,
		CheckIn: day(2026, 9, 12), CheckOut: day(2026, 9, 15),
		TotalSum: 3000,
	})
	require.Nil(t, errs)
	assert.ErrorIs(t, repo.Create(ctx, clash), ErrRoomBusy)

	// Adjacent insert passes.
	next, errs := domain.NewBooking(domain.BookingFields{
		ClientID: c.ID, RoomID: room.ID,
		CheckIn: day(2026, 9, 13), CheckOut: day(2026, 9, 15),
		TotalSum: 2000,
	})
	require.Nil(t, errs)
	require.NoError(t, repo.Create(ctx, next))

	// The stored booking does not collide with itself on update.
	first.Notes = "late arrival"
	ok, err := repo.Update(ctx, first)
	require.NoError(t, err)
	assert.True(t, ok)

	cnt, err := repo.CountOverlapping(ctx, room.ID, day(2026, 9, 11), day(2026, 9, 12), first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cnt)
}

func TestBookingRepository_GuardedStatusUpdate(t *testing.T) {
	db := testDB(t)
	clientRepo := NewClientRepository(db)
	roomRepo := NewRoomRepository(db)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	c := seedClient(t, clientRepo)
	room := seedRoom(t, roomRepo, "310")

	b, errs := domain.NewBooking(domain.BookingFields{
		ClientID: c.ID, RoomID: room.ID,
		CheckIn: day(2026, 9, 10), CheckOut: day(2026, 9, 12),
		TotalSum: 2000,
	})
	require.Nil(t, errs)
	require.NoError(t, repo.Create(ctx, b))

	// confirmed -> completed passes the guard.
	ok, err := repo.UpdateStatus(ctx, b.ID, domain.BookingCompleted, domain.BookingConfirmed)
	require.NoError(t, err)
	assert.True(t, ok)

	// completed is not in the cancel guard set.
	ok, err = repo.UpdateStatus(ctx, b.ID, domain.BookingCancelled, domain.BookingPending, domain.BookingConfirmed)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCompleted, got.Status)

	// A completed stay frees the room for the same dates.
	rebook, errs := domain.NewBooking(domain.BookingFields{
		ClientID: c.ID, RoomID: room.ID,
		CheckIn: day(2026, 9, 10), CheckOut: day(2026, 9, 12),
		TotalSum: 2000,
	})
	require.Nil(t, errs)
	assert.NoError(t, repo.Create(ctx, rebook))
}

func TestBookingRepository_PeriodAndBookedRooms(t *testing.T) {
	db := testDB(t)
	clientRepo := NewClientRepository(db)
	roomRepo := NewRoomRepository(db)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	c := seedClient(t, clientRepo)
	roomA := seedRoom(t, roomRepo, "101")
	roomB := seedRoom(t, roomRepo, "102")

	mk := func(roomID int64, in, out time.Time) {
		b, errs := domain.NewBooking(domain.BookingFields{
			ClientID: c.ID, RoomID: roomID, CheckIn: in, CheckOut: out, TotalSum: 1000,
		})
		require.Nil(t, errs)
		require.NoError(t, repo.Create(ctx, b))
	}

	mk(roomA.ID, day(2026, 9, 10), day(2026, 9, 13))
	mk(roomB.ID, day(2026, 9, 20), day(2026, 9, 22))

	got, err := repo.GetForPeriod(ctx, day(2026, 9, 1), day(2026, 9, 15))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, roomA.ID, got[0].RoomID)

	booked, err := repo.BookedRoomIDs(ctx, day(2026, 9, 11), day(2026, 9, 12))
	require.NoError(t, err)
	assert.True(t, booked[roomA.ID])
	assert.False(t, booked[roomB.ID])
}
