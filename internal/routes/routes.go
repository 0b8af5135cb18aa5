package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-chatbot/internal/config"
	"github.com/BruksfildServices01/barber-chatbot/internal/handlers"
	"github.com/BruksfildServices01/barber-chatbot/internal/middleware"
	"github.com/BruksfildServices01/barber-chatbot/internal/schedule"
)

// RegisterRoutes monta a API de recepção. db pode ser nil (trilha
// persistida desligada).
func RegisterRoutes(r *gin.Engine, db *gorm.DB, ledger *schedule.Ledger, cfg *config.Config) {

	r.Use(middleware.CORSMiddleware())

	authHandler := handlers.NewAuthHandler(cfg)
	bookingHandler := handlers.NewBookingHandler(ledger)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/bookings", bookingHandler.List)
			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
