package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/utils"
)

var errorKinds = []struct {
	kind   error
	status int
	label  string
}{
	{entities.ErrValidation, http.StatusBadRequest, "validation"},
	{entities.ErrNotFound, http.StatusNotFound, "not_found"},
	{entities.ErrConflict, http.StatusConflict, "conflict"},
	{entities.ErrForbidden, http.StatusForbidden, "forbidden"},
}

// writeServiceError maps workflow errors onto the response payload.
// Anything outside the known kinds is logged and hidden behind a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string, err error) {
	var stockErr *entities.InsufficientStockError
	if errors.As(err, &stockErr) {
		requestErrors.WithLabelValues(op, "insufficient_stock").Inc()
		utils.WriteJSON(w, InsufficientStockResponse{
			Message:           stockErr.Error(),
			ProductName:       stockErr.ProductName,
			AvailableStock:    stockErr.AvailableStock,
			RequestedQuantity: stockErr.RequestedQuantity,

			TotalRequestedQuantity: max(stockErr.TotalRequested, stockErr.RequestedQuantity),
		}, http.StatusBadRequest)
		return
	}

	for _, k := range errorKinds {
		if !errors.Is(err, k.kind) {
			continue
		}
		requestErrors.WithLabelValues(op, k.label).Inc()

		var details map[string]any
		var de *entities.DetailError
		if errors.As(err, &de) {
			details = de.Details
		}
		utils.WriteErrorDetails(w, clientMessage(err, k.kind), details, k.status)
		return
	}

	requestErrors.WithLabelValues(op, "internal").Inc()
	logger.ErrorContext(r.Context(), "request failed", slog.String("op", op), slog.Any("error", err))
	utils.WriteError(w, "internal server error", http.StatusInternalServerError)
}

// clientMessage drops the "<kind>: " prefix, the status code already says it.
func clientMessage(err, kind error) string {
	return strings.TrimPrefix(err.Error(), kind.Error()+": ")
}
