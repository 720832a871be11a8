package handlers

import (
	"errors"
	"net/http"

	"tulook/internal/auth"
	"tulook/internal/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminLoginRequest struct {
	Secret string `json:"secret"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AdminLogin
// @Summary		Admin login
// @Description	Exchanges the shared admin secret for a token pair
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			request	body		AdminLoginRequest			true	"Admin secret"
// @Success		200		{object}	response.TokenResponse
// @Failure		400		{object}	response.ErrorResponse		"VALIDATION_ERROR"
// @Failure		401		{object}	response.LoginErrorResponse	"INVALID_SECRET"
// @Failure		500		{object}	response.ErrorResponse		"TOKEN_GENERATION_ERROR"
// @Router			/auth/admin/login [post]
func (h *Handler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Datos inválidos",
			Details: err.Error(),
		})
		return
	}

	if err := h.gate.Verify(req.Secret); err != nil {
		h.log.Warn("admin login rejected", zap.String("ip", c.ClientIP()), zap.Bool("too_long", errors.Is(err, auth.ErrSecretTooLong)))
		c.JSON(http.StatusUnauthorized, response.LoginErrorResponse{
			ErrorResponse: response.ErrorResponse{
				Code:    "INVALID_SECRET",
				Message: "Clave incorrecta",
			},
			ClearInput: true,
		})
		return
	}

	h.issueTokens(c, h.gate.Issue)
}

// RefreshToken
// @Summary		Refresh the admin token pair
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			request	body		RefreshTokenRequest		true	"Refresh token"
// @Success		200		{object}	response.TokenResponse
// @Failure		400		{object}	response.ErrorResponse	"VALIDATION_ERROR"
// @Failure		401		{object}	response.ErrorResponse	"INVALID_REFRESH_TOKEN"
// @Failure		500		{object}	response.ErrorResponse	"TOKEN_GENERATION_ERROR"
// @Router			/auth/refresh [post]
func (h *Handler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Datos inválidos",
			Details: err.Error(),
		})
		return
	}

	h.issueTokens(c, func() (string, string, error) {
		return h.gate.Refresh(req.RefreshToken)
	})
}

func (h *Handler) issueTokens(c *gin.Context, issue func() (string, string, error)) {
	access, refresh, err := issue()
	if errors.Is(err, auth.ErrInvalidToken) {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Code:    "INVALID_REFRESH_TOKEN",
			Message: "Token de renovación inválido o vencido",
		})
		return
	}
	if err != nil {
		h.log.Error("issue admin tokens", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "TOKEN_GENERATION_ERROR",
			Message: "No se pudo generar el token",
		})
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	})
}
