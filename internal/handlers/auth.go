package handlers

import (
	"errors"
	"net/http"

	"studentregistry/internal/repository"
	"studentregistry/internal/service"

	"github.com/gin-gonic/gin"
)

// Client-facing messages; raw internals never reach the response body.
const (
	msgRegistered     = "User registered successfully."
	msgLoginOK        = "Login successful!"
	msgBadCredentials = "Invalid credentials."
	msgServerError    = "Server error."
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// respondError maps a service/repository error to the HTTP taxonomy.
// Validation and conflict errors carry their own safe message; anything
// unexpected is logged and collapsed to a generic 500.
func (h *Handler) respondError(c *gin.Context, err error, logKey string) {
	switch {
	case errors.Is(err, service.ErrMissingCredentials),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrInvalidGPA):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgBadCredentials})
	case errors.Is(err, repository.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Student not found."})
	default:
		if h.log != nil {
			h.log.Errorw(logKey, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgServerError})
	}
}

// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  registerRequest  true  "Credentials and role"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username, password, and role are required."})
		return
	}

	if _, err := h.services.Register(req.Username, req.Password, req.Role); err != nil {
		if h.log != nil {
			h.log.Infow("auth_register_failed", "username", req.Username, "err", err)
		}
		h.respondError(c, err, "auth_register_failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msgRegistered})
}

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200   {object}  map[string]string  "token, role, message"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required."})
		return
	}

	token, role, err := h.services.Login(req.Username, req.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_login_failed", "username", req.Username, "err", err)
		}
		h.respondError(c, err, "auth_login_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "role": role, "message": msgLoginOK})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
