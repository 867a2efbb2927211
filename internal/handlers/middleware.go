package handlers

import (
	"net/http"
	"strings"

	"studentregistry/internal/policy"
	"studentregistry/internal/service"

	"github.com/gin-gonic/gin"
)

const claimsCtxKey = "claims"

const (
	msgMissingAuthHeader = "Missing Authorization header."
	msgBadAuthHeader     = "Invalid Authorization header format."
	msgBadToken          = "Invalid or expired token."
	msgForbidden         = "Access denied. Insufficient permissions."
)

// authMiddleware verifies the Bearer token and stores the claims in the
// request context. Any verification failure is a uniform 401.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgMissingAuthHeader})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgBadAuthHeader})
		return
	}

	claims, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgBadToken})
		return
	}

	c.Set(claimsCtxKey, claims)
	c.Next()
}

// requireAction consults the policy table for the authenticated role.
// Runs after authMiddleware; a missing claim is treated as forbidden.
func (h *Handler) requireAction(action policy.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil || !policy.Allowed(claims.Role, action) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msgForbidden})
			return
		}
		c.Next()
	}
}

// currentClaims returns the verified claims set by authMiddleware, or nil.
func currentClaims(c *gin.Context) *service.Claims {
	v, ok := c.Get(claimsCtxKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*service.Claims)
	return claims
}
