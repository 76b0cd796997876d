package handlers

import (
	"heating_controller/internal/logger"
	"heating_controller/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds the gin router with every route registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerHeatingRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerHeatingRoutes(api *gin.RouterGroup) {
	heating := api.Group("/heating")
	{
		heating.POST("/connect", h.connect)
		heating.POST("/disconnect", h.disconnect)

		heating.POST("/power/on", h.turnOn)
		heating.POST("/power/off", h.turnOff)

		heating.POST("/boost/on", h.boostOn)
		heating.POST("/boost/off", h.boostOff)
		heating.GET("/boost", h.getBoost)

		// Body example: {"temperature":22}
		heating.PUT("/temperature", h.setTemperature)
		heating.GET("/temperature", h.getTemperature)
		heating.GET("/display", h.getDisplay)

		// Body example: {"temperature":18,"start":"01/08/2024","end":"31/08/2024"}
		heating.POST("/holiday", h.setHoliday)
		heating.DELETE("/holiday", h.clearHoliday)
		heating.GET("/mode", h.getMode)

		// Body example: {"start":"14:00","end":"17:00","temperature":22}
		heating.POST("/schedules", h.addSchedule)
		heating.DELETE("/schedules", h.clearSchedules)
		heating.GET("/schedules", h.getSchedules)

		heating.PUT("/welcome", h.setWelcome)
		heating.GET("/welcome", h.getWelcome)

		heating.POST("/faults/:fault", h.injectFault)
		heating.GET("/error", h.getError)

		heating.GET("/state", h.getState)
		heating.GET("/history", h.getHistory)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("/", h.getLogs)
	}
}
