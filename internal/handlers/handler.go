package handlers

import (
	_ "studentregistry/docs"
	"studentregistry/internal/logger"
	"studentregistry/internal/policy"
	"studentregistry/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Embedded single-page client
	h.registerClientRoutes(router)

	api := router.Group("/api")
	{
		h.registerAuthRoutes(api)
		h.registerStudentRoutes(api)
		h.registerAuditRoutes(api)
	}

	// Live roster feed, served over an HTTP upgrade on the same port.
	router.GET("/ws", h.wsRoster)

	return router
}

func (h *Handler) registerAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		// register is open, as in the original deployment; protect it before
		// exposing this service publicly.
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}
}

func (h *Handler) registerStudentRoutes(api *gin.RouterGroup) {
	students := api.Group("/students", h.authMiddleware)
	{
		students.GET("", h.requireAction(policy.ActionListStudents), h.listStudents)
		students.GET("/:id", h.requireAction(policy.ActionReadStudent), h.getStudent)
		students.POST("", h.requireAction(policy.ActionCreateStudent), h.createStudent)
		students.PUT("/:id", h.requireAction(policy.ActionUpdateStudent), h.updateStudent)
		students.DELETE("/:id", h.requireAction(policy.ActionDeleteStudent), h.deleteStudent)
	}
}

func (h *Handler) registerAuditRoutes(api *gin.RouterGroup) {
	audit := api.Group("/audit", h.authMiddleware, h.requireAction(policy.ActionReadAudit))
	{
		audit.GET("", h.getAudit)
	}
}
