package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sportbook-app/sportbook-backend/internal/api"
	"github.com/sportbook-app/sportbook-backend/internal/auth"
	"github.com/sportbook-app/sportbook-backend/internal/booking"
	"github.com/sportbook-app/sportbook-backend/internal/calendar"
	"github.com/sportbook-app/sportbook-backend/internal/court"
	"github.com/sportbook-app/sportbook-backend/internal/facility"
	"github.com/sportbook-app/sportbook-backend/internal/feed"
	"github.com/sportbook-app/sportbook-backend/internal/file"
	"github.com/sportbook-app/sportbook-backend/internal/pkg/storage"
	"github.com/sportbook-app/sportbook-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	StorageDir   string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	localStorage, err := storage.NewLocalStorage(cfg.StorageDir)
	if err != nil {
		return nil, fmt.Errorf("failed to init local storage: %w", err)
	}

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Facility Module
	facilityRepo := facility.NewPgxRepository(cfg.DBPool)
	facilityService := facility.NewService(facilityRepo)

	// Court Module
	courtRepo := court.NewPgxRepository(cfg.DBPool)
	courtService := court.NewService(courtRepo, facilityService)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, courtService, facilityService, time.Now)

	// Calendar Module
	calendarService := calendar.NewService(courtService, facilityService, bookingService, time.Now)

	// Feed Module
	feedRepo := feed.NewPgxRepository(cfg.DBPool)
	feedService := feed.NewService(feedRepo)

	// File Module
	fileRepo := file.NewRepository(cfg.DBPool)
	fileService := file.NewService(fileRepo, localStorage)

	// API Router Config
	routerParams := api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		UserService:     userService,
		FacilityService: facilityService,
		CourtService:    courtService,
		BookingService:  bookingService,
		CalendarService: calendarService,
		FeedService:     feedService,
		FileService:     fileService,
		JWTManager:      jwtManager,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
