package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"spigot-link/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	ctxSubjectKey = "subject"
	ctxRoleKey    = "role"
)

var roleHierarchy = map[string]int{
	jwt.RoleOperator: 1,
	jwt.RoleAdmin:    2,
}

type AuthMiddleware struct {
	tokens *jwt.Service
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxSubjectKey, claims.Subject)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRoleAtLeast must be used after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !hasMinimumRole(role, minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetSubject(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxSubjectKey)
	if !ok {
		return "", false
	}
	subject, ok := v.(string)
	return subject, ok
}

func GetRole(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxRoleKey)
	if !ok {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}

func hasMinimumRole(role, minRole string) bool {
	level, ok := roleHierarchy[role]
	minLevel, minOK := roleHierarchy[minRole]
	return ok && minOK && level >= minLevel
}
