package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"concessionaria_xpto/internal/domain/entities"
	"concessionaria_xpto/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ctxRequestID  = "request_id"
	ctxActingUser = "acting_user"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization is required", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
)

// Logger writes one structured line per request.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(ctxRequestID)),
		}
		if user, ok := ActingUser(c); ok {
			fields = append(fields, zap.String("user_id", user.ID))
		}

		switch {
		case status >= 500:
			logger.Error("[http] server error", fields...)
		case status >= 400:
			logger.Warn("[http] client error", fields...)
		default:
			logger.Info("[http] request", fields...)
		}
	}
}

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// Claims carries the acting user. Checkpoints are the approval grants
// (e.g. PROPOSAL.COMMERCIAL.APPROVAL.ALL).
type Claims struct {
	UserID      string   `json:"uid"`
	Name        string   `json:"name"`
	Checkpoints []string `json:"checkpoints"`
	jwt.RegisteredClaims
}

// JWTAuth validates an HS256 Bearer token and stores the acting user in the
// gin context. An empty secret rejects every request.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.TrimSpace(secret) == "" {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid || strings.TrimSpace(claims.UserID) == "" {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(ctxActingUser, entities.ActingUser{
			ID:          strings.TrimSpace(claims.UserID),
			Name:        claims.Name,
			Checkpoints: claims.Checkpoints,
		})
		c.Next()
	}
}

// ActingUser returns the user stored by JWTAuth.
func ActingUser(c *gin.Context) (entities.ActingUser, bool) {
	v, ok := c.Get(ctxActingUser)
	if !ok {
		return entities.ActingUser{}, false
	}
	user, ok := v.(entities.ActingUser)
	return user, ok
}

// SetActingUser stores user as the acting user of the request.
func SetActingUser(c *gin.Context, user entities.ActingUser) {
	c.Set(ctxActingUser, user)
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
