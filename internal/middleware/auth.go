package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"talenthub_backend/internal/auth"
	"talenthub_backend/internal/logger"
	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/pkg/apperrors"
	"talenthub_backend/pkg/contextkeys"
)

const (
	ctxUserIDKey   = "userID"
	ctxEmailKey    = "userEmail"
	ctxUserTypeKey = "userType"
)

// AuthMiddleware verifies the bearer access token and re-resolves its
// subject against the store: a token is only as good as the active user
// behind it. Must run after DBMiddleware.
func AuthMiddleware(tokens *auth.TokenManager, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, apperrors.ErrUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.VerifyAccess(tokenStr)
		if err != nil {
			abortUnauthorized(c, apperrors.ErrInvalidToken)
			return
		}

		db, ok := c.Get(string(contextkeys.DBContextKey))
		if !ok {
			abortUnauthorized(c, apperrors.ErrInvalidToken)
			return
		}

		user, err := userRepo.FindByID(db.(*gorm.DB), claims.Subject)
		if err != nil {
			abortUnauthorized(c, apperrors.ErrInvalidToken)
			return
		}
		if !user.IsActive {
			abortUnauthorized(c, apperrors.ErrAccountDisabled)
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Set(ctxUserIDKey, user.ID)
		c.Set(ctxEmailKey, user.Email)
		c.Set(ctxUserTypeKey, user.UserType)
		c.Next()
	}
}

// RequireUserType restricts a route to the given user kinds.
func RequireUserType(types ...models.UserType) gin.HandlerFunc {
	allowed := make(map[models.UserType]bool)
	for _, t := range types {
		allowed[t] = true
	}

	return func(c *gin.Context) {
		val, exists := c.Get(ctxUserTypeKey)
		if !exists {
			abortForbidden(c)
			return
		}

		userType, ok := val.(models.UserType)
		if !ok || !allowed[userType] {
			abortForbidden(c)
			return
		}

		c.Next()
	}
}

// GetUserID returns the authenticated user ID, or "" outside an
// authenticated route.
func GetUserID(c *gin.Context) string {
	if id, ok := c.Get(ctxUserIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

func GetUserEmail(c *gin.Context) string {
	if v, ok := c.Get(ctxEmailKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func GetUserType(c *gin.Context) models.UserType {
	if v, ok := c.Get(ctxUserTypeKey); ok {
		if t, ok := v.(models.UserType); ok {
			return t
		}
	}
	return ""
}

func abortUnauthorized(c *gin.Context, err *apperrors.AppError) {
	c.Abort()
	apperrors.HandleError(c, err)
}

func abortForbidden(c *gin.Context) {
	c.Abort()
	apperrors.HandleError(c, apperrors.New(apperrors.CodeForbidden, "auth", "Access denied", http.StatusForbidden))
}
