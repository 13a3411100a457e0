package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const userIDKey = "userID"

// UserIdentity extracts the authenticated user id set by the upstream
// session layer. Session validation itself happens before this service.
func UserIdentity() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw := ctx.GetHeader("X-User-ID")
		if raw == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid user identity"})
			return
		}

		ctx.Set(userIDKey, id)
		ctx.Next()
	}
}

func currentUser(ctx *gin.Context) (uuid.UUID, bool) {
	raw, ok := ctx.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := raw.(uuid.UUID)
	return id, ok
}
