package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"hotel/internal/config"
	"hotel/internal/database"
	"hotel/internal/domain"
	"hotel/internal/repository"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data (bookings first, they reference the other tables)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM clients")

	ctx := context.Background()
	clientRepo := repository.NewClientRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// ================== CLIENTS ==================
	log.Println("Creating clients...")
	clientSeeds := []domain.ClientFields{
		{Surname: "Иванов", Name: "Пётр", Patronymic: "Сергеевич", Phone: "+77771234567", Passport: "4510123456", Email: "ivanov@mail.kz", Comment: "Постоянный гость"},
		{Surname: "Ахметова", Name: "Асель", Phone: "+77012345678", Passport: "4510234567", Email: "asel@gmail.com"},
		{Surname: "Smith", Name: "John", Phone: "+14155551234", Passport: "7700112233", Email: "jsmith@example.com", Comment: "Late check-in"},
		{Surname: "Ковалёва", Name: "Дина", Patronymic: "Олеговна", Phone: "+77473456789", Passport: "4510345678", Email: "dina@yandex.kz"},
	}
	clients := make([]*domain.Client, 0, len(clientSeeds))
	for _, f := range clientSeeds {
		c, errs := domain.NewClient(f)
		if errs != nil {
			log.Fatalf("bad client seed %s: %v", f.Surname, errs)
		}
		if err := clientRepo.Create(ctx, c); err != nil {
			log.Fatal("create client:", err)
		}
		clients = append(clients, c)
	}

	// ================== ROOMS ==================
	log.Println("Creating rooms...")
	roomSeeds := []domain.RoomFields{
		{RoomNumber: "101", Capacity: 2, IsAvailable: true, Category: "standard", PricePerNight: 12000, Description: "Стандартный номер с видом во двор"},
		{RoomNumber: "101A", Capacity: 3, IsAvailable: true, Category: "standard", PricePerNight: 14000},
		{RoomNumber: "205", Capacity: 2, IsAvailable: true, Category: "suite", PricePerNight: 35000, Description: "Люкс с панорамными окнами"},
		{RoomNumber: "310", Capacity: 1, IsAvailable: true, Category: "economy", PricePerNight: 7000},
		{RoomNumber: "412", Capacity: 4, IsAvailable: true, Category: "apartments", PricePerNight: 48000, Description: "Апартаменты с кухней"},
		{RoomNumber: "503", Capacity: 2, IsAvailable: false, Category: "studio", PricePerNight: 22000, Description: "На ремонте"},
	}
	rooms := make([]*domain.Room, 0, len(roomSeeds))
	for _, f := range roomSeeds {
		r, errs := domain.NewRoom(f)
		if errs != nil {
			log.Fatalf("bad room seed %s: %v", f.RoomNumber, errs)
		}
		if err := roomRepo.Create(ctx, r); err != nil {
			log.Fatal("create room:", err)
		}
		rooms = append(rooms, r)
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")
	today := time.Now().UTC().Truncate(24 * time.Hour)
	statuses := []string{"pending", "confirmed", "confirmed", "completed", "cancelled"}

	created := 0
	for i := 0; i < 12; i++ {
		client := clients[rand.Intn(len(clients))]
		room := rooms[rand.Intn(len(rooms)-1)] // skip the unavailable one

		offset := rand.Intn(40) - 20 // -20..+19 days from today
		nights := 1 + rand.Intn(5)
		checkIn := today.AddDate(0, 0, offset)
		checkOut := checkIn.AddDate(0, 0, nights)

		b, errs := domain.NewBooking(domain.BookingFields{
			ClientID: client.ID,
			RoomID:   room.ID,
			CheckIn:  checkIn,
			CheckOut: checkOut,
			TotalSum: room.PricePerNight * float64(nights),
			Status:   statuses[rand.Intn(len(statuses))],
			Notes:    fmt.Sprintf("Demo booking %d", i+1),
		})
		if errs != nil {
			log.Fatalf("bad booking seed %d: %v", i, errs)
		}
		if err := bookingRepo.Create(ctx, b); err != nil {
			// Overlapping demo dates are expected now and then, just skip.
			log.Printf("skip booking %d: %v", i+1, err)
			continue
		}
		created++
	}

	log.Printf("Seed completed: %d clients, %d rooms, %d bookings", len(clients), len(rooms), created)
}
