package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aksoyde/gradesphere/internal/app/models/dto"
	"github.com/aksoyde/gradesphere/internal/pkg/apperrors"
	"github.com/aksoyde/gradesphere/internal/pkg/auth"
)

// ContextSchoolKey is the gin context key holding the authenticated
// school name.
const ContextSchoolKey = "schoolName"

// AuthMiddleware gates mutation endpoints behind a valid session token
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// RequireSchool validates the bearer token and threads the
// authenticated school through the request context. Anonymous callers
// are rejected before any handler (and therefore any storage write)
// runs.
func (m *AuthMiddleware) RequireSchool() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			code := dto.ErrorCodeInvalidToken
			message := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				code = dto.ErrorCodeExpiredToken
				message = "Token expired"
			}
			errorDetail := dto.NewErrorDetail(code, message)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextSchoolKey, claims.SchoolName)
		c.Next()
	}
}

// SchoolFromContext returns the authenticated school name, if any
func SchoolFromContext(c *gin.Context) (string, bool) {
	value, ok := c.Get(ContextSchoolKey)
	if !ok {
		return "", false
	}
	name, ok := value.(string)
	return name, ok && name != ""
}
