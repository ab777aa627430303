package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"hotel/internal/config"
	"hotel/internal/database"
	"hotel/internal/middleware"
	"hotel/internal/modules/bookings"
	"hotel/internal/modules/clients"
	"hotel/internal/modules/rooms"
	"hotel/internal/repository"
)

func main() {
	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	clientRepo := repository.NewClientRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	clientService := clients.NewService(clientRepo)
	clientHandler := clients.NewHandler(clientService)

	roomService := rooms.NewService(roomRepo, bookingRepo)
	roomHandler := rooms.NewHandler(roomService)

	bookingService := bookings.NewService(bookingRepo, roomRepo, clientRepo)
	bookingHandler := bookings.NewHandler(bookingService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		clientHandler.RegisterRoutes(v1)
		roomHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
