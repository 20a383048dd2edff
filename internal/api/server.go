package api

import (
	"github.com/alligatorO15/wed-planner/internal/api/handlers"
	"github.com/alligatorO15/wed-planner/internal/api/middleware"
	"github.com/alligatorO15/wed-planner/internal/config"
	"github.com/alligatorO15/wed-planner/internal/service"
	"github.com/gin-gonic/gin"
)

type Server struct {
	router   *gin.Engine
	config   *config.Config
	services *service.Services
}

func NewServer(cfg *config.Config, services *service.Services) *Server {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	server := &Server{
		router:   router,
		config:   cfg,
		services: services,
	}

	server.setupRoutes()

	return server
}

func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) setupRoutes() {
	//middleware
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.RequestLogger())

	// health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api/v1")

	// подготавливаем хэндлеры
	authHandler := handlers.NewAuthHandler(s.services.Auth, s.config)
	userHandler := handlers.NewUserHandler(s.services.User)
	eventHandler := handlers.NewEventHandler(s.services.Event)
	budgetHandler := handlers.NewBudgetHandler(s.services.Budget)
	guestHandler := handlers.NewGuestHandler(s.services.Guest, s.services.GuestImport)
	vendorHandler := handlers.NewVendorHandler(s.services.Vendor)
	taskHandler := handlers.NewTaskHandler(s.services.Task)
	invitationHandler := handlers.NewInvitationHandler(s.services.Invitation)
	rsvpHandler := handlers.NewRSVPHandler(s.services.Guest)
	dashboardHandler := handlers.NewDashboardHandler(s.services.Dashboard)

	// эндпоинты аутентификации (публичные)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// публичный rsvp по коду из письма, без токена
	rsvp := api.Group("/rsvp")
	{
		rsvp.GET("/:code", rsvpHandler.Get)
		rsvp.POST("/:code", rsvpHandler.Submit)
	}

	// непубличные эндпоинты
	protected := api.Group("")
	protected.Use(middleware.Auth(s.services.Auth))
	{
		// auth (protected)
		protected.POST("/auth/logout-all", authHandler.LogoutAll)

		// user
		protected.GET("/user", userHandler.GetCurrent)
		protected.PUT("/user", userHandler.Update)
		protected.DELETE("/user", userHandler.Delete)

		// events
		events := protected.Group("/events")
		{
			events.POST("", eventHandler.Create)
			events.GET("", eventHandler.List)
			events.GET("/:id", eventHandler.GetByID)
			events.PUT("/:id", eventHandler.Update)
			events.DELETE("/:id", eventHandler.Delete)

			// dashboard
			events.GET("/:id/dashboard", dashboardHandler.Get)

			// budget
			events.POST("/:id/budget", budgetHandler.CreateEntry)
			events.GET("/:id/budget", budgetHandler.ListEntries)
			events.GET("/:id/budget/report", budgetHandler.GetReport)
			events.PUT("/:id/budget/:entryId", budgetHandler.UpdateEntry)
			events.POST("/:id/budget/:entryId/payments", budgetHandler.RecordPayment)
			events.DELETE("/:id/budget/:entryId", budgetHandler.DeleteEntry)

			// guests
			events.POST("/:id/guests", guestHandler.Create)
			events.GET("/:id/guests", guestHandler.List)
			events.GET("/:id/guests/stats", guestHandler.GetStats)
			events.GET("/:id/guests/costs", guestHandler.GetCostProjection)
			events.GET("/:id/guests/alerts", guestHandler.GetAlerts)
			events.POST("/:id/guests/import", guestHandler.ImportCSV)
			events.GET("/:id/guests/imports", guestHandler.ImportHistory)
			events.GET("/:id/guests/:guestId", guestHandler.GetByID)
			events.PUT("/:id/guests/:guestId", guestHandler.Update)
			events.DELETE("/:id/guests/:guestId", guestHandler.Delete)

			// family groups
			events.POST("/:id/family-groups", guestHandler.CreateFamilyGroup)
			events.GET("/:id/family-groups", guestHandler.ListFamilyGroups)
			events.DELETE("/:id/family-groups/:groupId", guestHandler.DeleteFamilyGroup)

			// tasks
			events.POST("/:id/tasks", taskHandler.Create)
			events.GET("/:id/tasks", taskHandler.List)
			events.GET("/:id/tasks/summary", taskHandler.GetSummary)
			events.PUT("/:id/tasks/:taskId", taskHandler.Update)
			events.DELETE("/:id/tasks/:taskId", taskHandler.Delete)

			// invitations
			events.POST("/:id/invitations", invitationHandler.Send)
			events.POST("/:id/invitations/bulk", invitationHandler.SendBulk)
			events.GET("/:id/invitations", invitationHandler.List)
		}

		// vendors (общий каталог)
		vendors := protected.Group("/vendors")
		{
			vendors.POST("", vendorHandler.Create)
			vendors.GET("", vendorHandler.List)
			vendors.GET("/:id", vendorHandler.GetByID)
			vendors.PUT("/:id", vendorHandler.Update)
			vendors.DELETE("/:id", vendorHandler.Delete)
		}
	}
}
