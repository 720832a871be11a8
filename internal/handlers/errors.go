package handlers

import (
	"errors"
	"net/http"

	"tulook/internal/queue"
	"tulook/internal/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// queueError writes the response for an error returned by the queue store.
func (h *Handler) queueError(c *gin.Context, err error) {
	status, body := http.StatusInternalServerError, response.ErrorResponse{
		Code:    "DB_ERROR",
		Message: "No pudimos procesar la fila. Intenta de nuevo.",
	}

	switch {
	case errors.Is(err, queue.ErrEmptyName):
		status, body = http.StatusBadRequest, response.ErrorResponse{Code: "EMPTY_NAME", Message: "Ingresa tu nombre"}
	case errors.Is(err, queue.ErrNameTooLong):
		status, body = http.StatusBadRequest, response.ErrorResponse{Code: "NAME_TOO_LONG", Message: "El nombre es demasiado largo"}
	case errors.Is(err, queue.ErrUnknownBarber):
		status, body = http.StatusBadRequest, response.ErrorResponse{Code: "UNKNOWN_BARBER", Message: "Barbero desconocido"}
	case errors.Is(err, queue.ErrUnknownService):
		status, body = http.StatusBadRequest, response.ErrorResponse{Code: "UNKNOWN_SERVICE", Message: "Servicio desconocido"}
	case errors.Is(err, queue.ErrPriceNotConfigured):
		status, body = http.StatusConflict, response.ErrorResponse{Code: "PRICE_NOT_CONFIGURED", Message: "El servicio no tiene precio configurado"}
	case errors.Is(err, queue.ErrNotFound):
		status, body = http.StatusNotFound, response.ErrorResponse{Code: "ENTRY_NOT_FOUND", Message: "No encontramos ese turno"}
	case errors.Is(err, queue.ErrInvalidTransition):
		status, body = http.StatusConflict, response.ErrorResponse{Code: "INVALID_TRANSITION", Message: "El turno ya cambió de estado"}
	default:
		h.log.Error("queue operation failed", zap.String("path", c.FullPath()), zap.Error(err))
	}

	c.JSON(status, body)
}
