package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sportbook-app/sportbook-backend/internal/auth"
	"github.com/sportbook-app/sportbook-backend/internal/booking"
	bookingHttp "github.com/sportbook-app/sportbook-backend/internal/booking/http"
	"github.com/sportbook-app/sportbook-backend/internal/calendar"
	calendarHttp "github.com/sportbook-app/sportbook-backend/internal/calendar/http"
	"github.com/sportbook-app/sportbook-backend/internal/court"
	courtHttp "github.com/sportbook-app/sportbook-backend/internal/court/http"
	"github.com/sportbook-app/sportbook-backend/internal/facility"
	facilityHttp "github.com/sportbook-app/sportbook-backend/internal/facility/http"
	"github.com/sportbook-app/sportbook-backend/internal/feed"
	feedHttp "github.com/sportbook-app/sportbook-backend/internal/feed/http"
	"github.com/sportbook-app/sportbook-backend/internal/file"
	fileHttp "github.com/sportbook-app/sportbook-backend/internal/file/http"
	"github.com/sportbook-app/sportbook-backend/internal/user"
	userHttp "github.com/sportbook-app/sportbook-backend/internal/user/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	UserService     user.Service
	FacilityService facility.Service
	CourtService    court.Service
	BookingService  booking.Service
	CalendarService calendar.Service
	FeedService     feed.Service
	FileService     file.Service
	JWTManager      *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:8081", // local web client
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// sysAdminMiddleware: Further checks if the authenticated user has System Admin privileges.
	sysAdminMiddleware := RequireSystemAdmin(cfg.UserService)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewUserHandler(cfg.UserService, cfg.JWTManager)
	facilityHandler := facilityHttp.NewHandler(cfg.FacilityService, cfg.UserService)
	courtHandler := courtHttp.NewHandler(cfg.CourtService, cfg.UserService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.UserService)
	calendarHandler := calendarHttp.NewHandler(cfg.CalendarService)
	feedHandler := feedHttp.NewHandler(cfg.FeedService, cfg.UserService)
	fileHandler := fileHttp.NewHandler(cfg.FileService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, sysAdminMiddleware)
		facilityHttp.RegisterRoutes(v1, facilityHandler, authMiddleware)
		courtHttp.RegisterRoutes(v1, courtHandler, authMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		calendarHttp.RegisterRoutes(v1, calendarHandler)
		feedHttp.RegisterRoutes(v1, feedHandler, authMiddleware)
		fileHttp.RegisterRoutes(v1, fileHandler, authMiddleware)
	}

	return r
}
