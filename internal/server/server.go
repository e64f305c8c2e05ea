package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Manuhps/SIC-Grupo8/config"
	"github.com/Manuhps/SIC-Grupo8/internal/auth"
	"github.com/Manuhps/SIC-Grupo8/internal/handlers"
	"github.com/Manuhps/SIC-Grupo8/internal/middleware"
	"github.com/Manuhps/SIC-Grupo8/internal/store"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()
	setupRoutes(r, db, auth.NewVerifier(cfg.JWTSecret))

	return r.Run(":" + cfg.Port)
}

// NewRouter builds a fully wired router, used by Start and by tests.
func NewRouter(db *gorm.DB, verifier *auth.Verifier) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	setupRoutes(r, db, verifier)
	return r
}

func setupRoutes(r *gin.Engine, db *gorm.DB, verifier *auth.Verifier) {
	r.Use(middleware.RequestID())

	eventStore := store.NewEventStore(db)
	registrationStore := store.NewRegistrationStore(db)

	eventHandler := handlers.NewEventHandler(eventStore)
	registrationHandler := handlers.NewRegistrationHandler(eventStore, registrationStore)

	public := r.Group("/events")
	{
		public.GET("", eventHandler.List)
		public.GET("/:id", eventHandler.Get)
	}

	protected := r.Group("/events")
	protected.Use(middleware.JWTAuth(verifier))
	{
		organizers := protected.Group("")
		organizers.Use(middleware.RequireRoles(auth.RoleOrganizer, auth.RoleAdmin))
		{
			organizers.POST("", eventHandler.Create)
			organizers.PATCH("/:id", eventHandler.Update)
			organizers.DELETE("/:id", eventHandler.Delete)

			organizers.GET("/:id/registrants", registrationHandler.ListForEvent)
			organizers.PATCH("/:id/registrations/:userId", registrationHandler.UpdateStatus)
			organizers.DELETE("/:id/registrations/:userId", registrationHandler.Delete)
		}

		attendees := protected.Group("")
		attendees.Use(middleware.RequireRoles(auth.RoleUser))
		{
			attendees.POST("/:id/register", registrationHandler.Register)
		}
	}
}
