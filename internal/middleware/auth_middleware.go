package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"barangay-portal/internal/domain"
	"barangay-portal/internal/shared/apperror"
	"barangay-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const callerKey = "caller"

// IdentityLookup resolves a token subject into the stored identity. The role always
// comes from storage, never from the token, so it cannot be client-set.
type IdentityLookup interface {
	Lookup(ctx context.Context, id uuid.UUID) (domain.Caller, error)
}

var (
	errTokenMissing = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	errTokenInvalid = apperror.New("INVALID_TOKEN", "Invalid token", http.StatusUnauthorized)
	errTokenExpired = apperror.New("TOKEN_EXPIRED", "Token expired", http.StatusUnauthorized)
)

// AuthMiddleware verifies the bearer token issued by the identity provider and attaches the caller.
func AuthMiddleware(secret []byte, lookup IdentityLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, errTokenMissing)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return secret, nil
		})

		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWith(c, errTokenExpired)
				return
			}
			abortWith(c, errTokenInvalid)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWith(c, errTokenInvalid)
			return
		}

		subject, _ := claims["user_id"].(string)
		if subject == "" {
			subject, _ = claims["sub"].(string)
		}
		userID, err := uuid.Parse(subject)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "User ID not found in token", nil)
			return
		}

		caller, err := lookup.Lookup(c.Request.Context(), userID)
		if err != nil {
			// Only a known identity error is the caller's fault; storage failures are a 500.
			httpErr := apperror.ToHTTP(err)
			if httpErr.Status >= http.StatusInternalServerError {
				zap.L().Named("middleware.auth").Error("identity lookup failed",
					zap.String("user_id", userID.String()),
					zap.Error(err),
				)
			}
			response.Abort(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			return
		}

		c.Set(callerKey, caller)
		c.Set("user_id", caller.ID.String())
		c.Set("user_id_validated", caller.ID.String())
		c.Set("role", string(caller.Role))

		c.Next()
	}
}

// CallerFrom returns the identity attached by AuthMiddleware.
func CallerFrom(c *gin.Context) (domain.Caller, bool) {
	v, exists := c.Get(callerKey)
	if !exists {
		return domain.Caller{}, false
	}
	caller, ok := v.(domain.Caller)
	return caller, ok
}

// SetCaller attaches an identity to the context. Handler tests use it in place of a token.
func SetCaller(c *gin.Context, caller domain.Caller) {
	c.Set(callerKey, caller)
	c.Set("user_id", caller.ID.String())
	c.Set("user_id_validated", caller.ID.String())
	c.Set("role", string(caller.Role))
}

func abortWith(c *gin.Context, e *apperror.AppError) {
	response.Abort(c, e.HTTPStatus, e.Code, e.Message, nil)
}
