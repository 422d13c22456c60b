package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oguzk/stajtakip/internal/legacy/models"
	"github.com/oguzk/stajtakip/internal/legacy/repositories"
)

// ContextUser is the gin context key holding the authenticated *models.User.
const ContextUser = "currentUser"

// Middleware authenticates requests and gates them by role. It loads the
// user from the store on every request so role changes take effect
// immediately, matching how the original API behaved.
type Middleware struct {
	tokens *TokenService
	users  repositories.UserRepository
}

// NewMiddleware creates the auth middleware.
func NewMiddleware(tokens *TokenService, users repositories.UserRepository) *Middleware {
	return &Middleware{tokens: tokens, users: users}
}

// RequireAuth validates the bearer token and attaches the user to the context.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
			return
		}

		claims, err := m.tokens.ValidateToken(parts[1])
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
			return
		}

		user, err := m.users.GetUserByID(ctx.Request.Context(), userID)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
			return
		}

		ctx.Set(ContextUser, user)
		ctx.Next()
	}
}

// RequireRoles rejects the request unless the authenticated user has one of
// the given roles. Must run after RequireAuth.
func (m *Middleware) RequireRoles(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := CurrentUser(ctx)
		if user == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}

		for _, role := range roles {
			if user.Role == role {
				ctx.Next()
				return
			}
		}

		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Not authorized"})
	}
}

// CurrentUser returns the authenticated user set by RequireAuth, or nil.
func CurrentUser(ctx *gin.Context) *models.User {
	value, exists := ctx.Get(ContextUser)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
