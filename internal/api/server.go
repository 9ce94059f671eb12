package api

import (
	"fmt"
	"net/http"

	"futsalbook/internal/cache"
	"futsalbook/internal/config"
	"futsalbook/internal/database"
	"futsalbook/internal/handlers"
	"futsalbook/internal/logger"
	"futsalbook/internal/messaging"
	"futsalbook/internal/middleware"
	"futsalbook/internal/repository"
	"futsalbook/internal/service"
	"futsalbook/internal/venues"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server is the booking API: routing, storage connections and services.
type Server struct {
	router   *gin.Engine
	config   *config.Config
	db       *database.DB
	sessions *cache.SessionStore
	nats     *messaging.NATSClient
	services *service.Services
	repos    *repository.Repositories
}

func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := db.RunMigrations(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	sessions, err := cache.NewSessionStore(cfg.Sessions)
	if err != nil {
		logger.Fatal("Failed to connect to session store", "error", err)
	}

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", "error", err)
	}

	catalog := venues.NewCatalog()
	repos := repository.NewRepositories(db)
	services := service.NewServices(cfg, repos, catalog, sessions, natsClient)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())

	server := &Server{
		router:   router,
		config:   cfg,
		db:       db,
		sessions: sessions,
		nats:     natsClient,
		services: services,
		repos:    repos,
	}

	server.setupRoutes(catalog)

	return server
}

func (s *Server) setupRoutes(catalog *venues.Catalog) {
	h := handlers.NewHandlers(s.services, catalog)

	api := s.router.Group("/api")
	{
		// Public endpoints
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)
		api.POST("/admin/login", h.AdminLogin)
		api.GET("/venues", h.ListVenues)
		api.GET("/venues/:id", h.GetVenue)
		api.GET("/slots", h.ListSlots)

		// Everything below requires a Bearer session token
		authd := api.Group("")
		authd.Use(middleware.SessionAuth(s.sessions))
		{
			authd.POST("/logout", h.Logout)
			authd.GET("/profile", h.GetProfile)
			authd.PUT("/profile", h.UpdateProfile)

			authd.PUT("/session/venue", h.SelectVenue)

			authd.POST("/bookings/draft", h.CreateDraft)
			authd.GET("/bookings/draft", h.GetDraft)
			authd.POST("/checkout", h.Checkout)

			transactions := authd.Group("/transactions")
			{
				transactions.GET("", h.ListTransactions)
				transactions.GET("/:id", h.GetTransaction)
				transactions.PATCH("/:id/cancel", h.CancelTransaction)
				transactions.POST("/:id/proof", h.UploadProof)
				transactions.DELETE("/:id/proof", h.RemoveProof)
			}

			admin := authd.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				admin.GET("/dashboard", h.Dashboard)
				admin.GET("/transactions", h.AdminListTransactions)
				admin.GET("/transactions/:id", h.AdminGetTransaction)
				admin.PATCH("/transactions/:id/status", h.UpdateTransactionStatus)
			}
		}
	}

	s.router.GET("/health", s.healthCheck)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (s *Server) healthCheck(c *gin.Context) {
	health := s.db.HealthCheck(c.Request.Context())
	status := http.StatusOK
	if health.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":   health.Status,
		"service":  "futsalbook-api",
		"version":  "1.0.0",
		"database": health,
	})
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}

// GetRouter exposes the router for tests.
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Cleanup closes external connections.
func (s *Server) Cleanup() error {
	if s.nats != nil {
		if err := s.nats.Close(); err != nil {
			logger.Get().Error("Error closing NATS connection", "error", err)
		}
	}

	if s.sessions != nil {
		if err := s.sessions.Close(); err != nil {
			logger.Get().Error("Error closing session store", "error", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			logger.Get().Error("Error closing database connection", "error", err)
			return err
		}
	}

	return nil
}
