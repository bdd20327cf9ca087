package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Miraines/StudyPlanner/backend/internal/adapters/transport/http/dto"
	customErrors "github.com/Miraines/StudyPlanner/backend/internal/domain/auth/errors"
)

// UserIDKey is the gin context key holding the authenticated account id.
const UserIDKey = "userID"

// Authenticator resolves a bearer token to an account id.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// Bearer rejects requests without a valid "Authorization: Bearer <token>"
// header. Every rejection carries the same body.
func Bearer(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: customErrors.MsgInvalidToken})
			return
		}

		userID, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			status, msg := customErrors.Response(err)
			if status >= http.StatusInternalServerError {
				_ = c.Error(err)
			}
			c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: msg})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID returns the id stored by Bearer.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

func bearerToken(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
