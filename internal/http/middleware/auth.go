package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"rental-backend/internal/domain"
)

const actorKey = "actor"

// ActorClaims is the token payload used to stamp createdBy/updatedBy.
type ActorClaims struct {
	UserID   domain.ID `json:"user_id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	jwt.RegisteredClaims
}

// Actor resolves the caller from a Bearer token and stores it on the request
// context. Requests without a token run as the system actor; a token that
// does not verify is rejected. An empty secret disables token parsing.
func Actor(secret []byte) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" || len(secret) == 0 {
			c.Next()
			return
		}

		var claims ActorClaims
		_, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) { return secret, nil })
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      msg,
				"code":       "unauthorized",
				"request_id": GetRequestID(c),
			})
			return
		}

		actor := domain.RequestContext{UserID: claims.UserID, Username: claims.Username, Role: claims.Role}
		if actor.UserID == 0 && claims.Subject != "" {
			if id, err := strconv.ParseInt(claims.Subject, 10, 64); err == nil {
				actor.UserID = domain.ID(id)
			}
		}
		c.Set(actorKey, actor)
		c.Request = c.Request.WithContext(domain.WithActor(c.Request.Context(), actor))
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "bearer "
	header = strings.TrimSpace(header)
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func actorName(c *gin.Context) string {
	if v, ok := c.Get(actorKey); ok {
		if a, ok := v.(domain.RequestContext); ok {
			return a.Name()
		}
	}
	return domain.SystemActor
}
