package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := JWTAuthMiddleware(h.cfg, h.logger)

	// Маршруты аутентификации
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.register)
		authGroup.POST("/login", h.login)
		authGroup.GET("/me", auth, h.me)
	}

	// Маршруты инцидентов: публичная лента и защищенный прием сообщений
	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listConfirmed)
		incidents.GET("/types", h.listIncidentTypes)
		incidents.POST("/report", auth, h.reportIncident)
		incidents.GET("/stats", auth, h.getStats)
	}

	// Маршруты волонтеров
	volunteers := api.Group("/volunteers")
	{
		volunteers.POST("/register", auth, h.registerVolunteer)
		volunteers.GET("", auth, h.listVolunteers)
	}

	// Маршруты запросов помощи
	aid := api.Group("/aid")
	{
		aid.POST("/request", auth, h.submitAidRequest)
		aid.GET("/requests", auth, h.listAidRequests)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
