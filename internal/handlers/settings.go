package handlers

import (
	"net/http"

	"tulook/internal/models"
	"tulook/internal/response"
	"tulook/internal/settings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettingsPayload is the pricing and payout alias configuration, saved as a
// whole.
type SettingsPayload struct {
	Pricing models.Pricing       `json:"precios" binding:"required" swaggertype:"object,string"`
	Aliases models.PayoutAliases `json:"alias" swaggertype:"object,string"`
}

// GetSettings
// @Summary		Current pricing and payout aliases
// @Tags			admin
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	SettingsPayload
// @Failure		401	{object}	response.ErrorResponse	"INVALID_TOKEN"
// @Router			/api/admin/settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, SettingsPayload{
		Pricing: h.settings.Pricing(),
		Aliases: h.settings.Aliases(),
	})
}

// SaveSettings
// @Summary		Save pricing and payout aliases
// @Description	Both documents are replaced in one write. Existing tickets keep the price they were created with.
// @Tags			admin
// @Accept			json
// @Produce		json
// @Param			request	body	SettingsPayload	true	"Settings"
// @Security		BearerAuth
// @Success		200	{object}	SettingsPayload
// @Failure		400	{object}	response.ErrorResponse	"VALIDATION_ERROR"
// @Failure		401	{object}	response.ErrorResponse	"INVALID_TOKEN"
// @Failure		500	{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/admin/settings [put]
func (h *Handler) SaveSettings(c *gin.Context) {
	var req SettingsPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Datos inválidos",
			Details: err.Error(),
		})
		return
	}

	if err := settings.Validate(req.Pricing, req.Aliases); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Configuración inválida",
			Details: err.Error(),
		})
		return
	}

	if err := h.settings.Save(c.Request.Context(), req.Pricing, req.Aliases); err != nil {
		h.log.Error("save settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "No se pudo guardar la configuración",
		})
		return
	}

	c.JSON(http.StatusOK, SettingsPayload{
		Pricing: h.settings.Pricing(),
		Aliases: h.settings.Aliases(),
	})
}
