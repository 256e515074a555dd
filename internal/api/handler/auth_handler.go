package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"collection-portal/internal/api/handler/dto"
	"collection-portal/internal/config"
	"collection-portal/internal/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

type AuthHandler struct {
	cfg    config.Config
	logger *slog.Logger
}

func NewAuthHandler(cfg config.Config, l *slog.Logger) *AuthHandler {
	return &AuthHandler{
		cfg:    cfg,
		logger: l.With("component", "AuthHandler"),
	}
}

// GenerateBearerToken generates a JWT bearer token for an agent.
//
// @Summary Generate a JWT bearer token
// @Description Issues a bearer token carrying the agent id and role claims used to scope schedule and dashboard access.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "agent credentials"
// @Success 200 {object} map[string]string "Token successfully generated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/token [post]
func (h *AuthHandler) GenerateBearerToken(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequest
	h.logger.Info("Generating bearer token")
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Error("failed to decode request body", "error", err)
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	if req.Username == "" {
		h.logger.Error("username is required")
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, "username is required"))
		return
	}
	if req.AgentID <= 0 {
		h.logger.Error("agentId must be positive")
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, "agentId must be positive"))
		return
	}

	role := req.Role
	if role == "" {
		role = "agent"
	}

	claims := jwt.MapClaims{
		"username": req.Username,
		"agentId":  req.AgentID,
		"role":     role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(h.cfg.Server.Auth.JWTSecret))
	if err != nil {
		h.logger.Error("failed to sign token", "error", err)
		respondError(w, fmt.Errorf("%w: failed to sign token", apperrors.ErrInternalServer))
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": fmt.Sprintf("Bearer %s", tokenString)})
}
