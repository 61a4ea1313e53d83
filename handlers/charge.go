package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"goflare.io/lookup"
	"goflare.io/lookup/charge"
	"goflare.io/lookup/models"
)

type ChargeHandler interface {
	GetCharge(c echo.Context) error
}

type chargeHandler struct {
	Lookup lookup.Lookup
	logger *zap.Logger
}

func NewChargeHandler(
	Lookup lookup.Lookup,
	logger *zap.Logger,
) ChargeHandler {
	return &chargeHandler{
		Lookup: Lookup,
		logger: logger,
	}
}

// GetCharge handles GET /charges/:id
func (ch *chargeHandler) GetCharge(c echo.Context) error {
	id := c.Param("id")

	items, err := ch.Lookup.Find(c.Request().Context(), id)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, models.Document{Items: items})
	case errors.Is(err, lookup.ErrEmptyTransactionID):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Transaction id is required"})
	case errors.Is(err, charge.ErrAllRegionsExhausted):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Charge not found"})
	default:
		ch.logger.Error("failed to look up charge", zap.String("transaction_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to look up charge"})
	}
}
