package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"collection-portal/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	agentIDContextKey contextKey = "authAgentID"
	roleContextKey    contextKey = "authRole"
)

const RoleAdmin = "admin"

// AgentIDFromContext returns the agent id carried by the bearer token, or
// false when the request was not authenticated.
func AgentIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(agentIDContextKey).(int64)
	return id, ok
}

func RoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleContextKey).(string)
	return role, ok
}

func AuthMiddleware(cfg config.AuthConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := validateJWT(r, cfg.JWTSecret, logger)
			if !ok {
				http.Error(w, `{"error":{"message":"Unauthorized"}}`, http.StatusUnauthorized)
				return
			}

			ctx := r.Context()
			if agentID, ok := claims["agentId"].(float64); ok {
				ctx = context.WithValue(ctx, agentIDContextKey, int64(agentID))
			}
			if role, ok := claims["role"].(string); ok {
				ctx = context.WithValue(ctx, roleContextKey, role)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route group on the role claim. When auth is disabled
// the gate is a no-op, matching AuthMiddleware.
func RequireRole(cfg config.AuthConfig, role string, logger *slog.Logger) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := RoleFromContext(r.Context())
			if !ok || got != role {
				logger.Warn("RequireRole: Forbidden request", "requiredRole", role, "gotRole", got)
				http.Error(w, `{"error":{"message":"Forbidden"}}`, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func validateJWT(r *http.Request, secret string, logger *slog.Logger) (jwt.MapClaims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		logger.Warn("AuthMiddleware: Missing Authorization header")
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		logger.Warn("AuthMiddleware: Invalid Authorization header format")
		return nil, false
	}
	tokenString := parts[1]

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			logger.Warn("AuthMiddleware: Unexpected signing method")
			return nil, http.ErrAbortHandler
		}
		return []byte(secret), nil
	})

	if err != nil || !token.Valid {
		logger.Warn("AuthMiddleware: Invalid token", "error", err)
		return nil, false
	}

	logger.Info("AuthMiddleware: Authenticated request")
	return claims, true
}
