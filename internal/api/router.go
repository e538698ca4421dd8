package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/richchoi/hotel-system/docs"
	"github.com/richchoi/hotel-system/internal/api/handler"
	"github.com/richchoi/hotel-system/internal/api/middleware"
	"github.com/richchoi/hotel-system/internal/core/domain"
	"github.com/richchoi/hotel-system/internal/core/ports"
)

// Deps carries everything the router wires into handlers. The composition
// root (cmd/api) owns construction; the router only registers routes.
type Deps struct {
	Registry  ports.RegistryService
	Inventory ports.InventoryService
	Bookings  ports.BookingService
	Concierge ports.ConciergeService
	Services  ports.ServiceRepository
	Partners  ports.PartnerRepository
	Redis     *redis.Client // nil when the reply cache is disabled
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("richchoi"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Registry)
	userHandler := handler.NewUserHandler(deps.Registry)
	roomHandler := handler.NewRoomHandler(deps.Inventory)
	bookingHandler := handler.NewBookingHandler(deps.Bookings)
	catalogHandler := handler.NewCatalogHandler(deps.Services, deps.Partners)
	chatHandler := handler.NewChatHandler(deps.Concierge)

	session := middleware.Session(deps.Registry)
	adminOnly := middleware.RBAC(string(domain.RoleAdmin))

	// --- Auth ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me)

	// --- Public catalog ---
	v1 := e.Group("/v1")
	v1.GET("/rooms", roomHandler.List)
	v1.GET("/rooms/:id", roomHandler.Get)
	v1.GET("/services", catalogHandler.ListServices)
	v1.GET("/partners", catalogHandler.ListPartners)
	v1.GET("/i18n/:lang", catalogHandler.Dictionary)

	// --- Checkout ---
	v1.POST("/bookings", bookingHandler.Start)
	v1.POST("/bookings/:id/confirm", bookingHandler.Confirm)
	v1.POST("/bookings/:id/cancel", bookingHandler.Cancel)
	v1.GET("/bookings/:id/qr", bookingHandler.QRCode)

	// --- Concierge ---
	v1.POST("/chat", chatHandler.Send)

	// --- Admin console ---
	admin := v1.Group("", session, adminOnly)
	admin.POST("/rooms", roomHandler.Create)
	admin.PUT("/rooms/:id", roomHandler.Update)
	admin.DELETE("/rooms/:id", roomHandler.Delete)
	admin.POST("/rooms/:id/toggle", roomHandler.ToggleAvailability)
	admin.GET("/stats", roomHandler.Stats)
	admin.GET("/users", userHandler.List)
	admin.POST("/users/:id/toggle", userHandler.ToggleStatus)
	admin.DELETE("/users/:id", userHandler.Delete)

	// --- Observability & docs ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
