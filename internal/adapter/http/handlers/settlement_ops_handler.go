package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"notesbytes_settlement/internal/usecase"
	"notesbytes_settlement/pkg"

	"github.com/gin-gonic/gin"
)

// SettlementOpsHandler handles the operator endpoints over the ledger:
// reviewing stale claims, auditing attempt logs and resetting reviewed
// entries for retry.

type SettlementOpsHandler struct {
	usecase usecase.ISettlementOpsUseCase
}

func NewSettlementOpsHandler(uc usecase.ISettlementOpsUseCase) *SettlementOpsHandler {
	return &SettlementOpsHandler{usecase: uc}
}

// GetRevenue returns one ledger entry by id.
func (h *SettlementOpsHandler) GetRevenue(c *gin.Context) {
	id := c.Param("id")
	rev, err := h.usecase.GetRevenue(c.Request.Context(), id)
	if err != nil {
		appErr := mapSettlementOpsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, rev)
}

// ListLogs returns the audit trail for one order.
func (h *SettlementOpsHandler) ListLogs(c *gin.Context) {
	orderID := c.Param("order_id")
	logs, err := h.usecase.ListLogsByOrderID(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapSettlementOpsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, logs)
}

// ListStale returns PROCESSING entries older than the review threshold.
// An optional older_than query param (Go duration, e.g. "2h") overrides
// the configured threshold.
func (h *SettlementOpsHandler) ListStale(c *gin.Context) {
	var olderThan time.Duration
	if raw := c.Query("older_than"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "older_than must be a positive duration", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		olderThan = d
	}

	stale, err := h.usecase.ListStaleProcessing(c.Request.Context(), olderThan)
	if err != nil {
		appErr := mapSettlementOpsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, stale)
}

// ResetForRetry moves a reviewed FAILED (or stale PROCESSING) entry
// back to PENDING.
func (h *SettlementOpsHandler) ResetForRetry(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[settlement][handler] reset start revenue_id=%s", id)

	rev, err := h.usecase.ResetForRetry(c.Request.Context(), id)
	if err != nil {
		log.Printf("[settlement][handler] reset failed revenue_id=%s err=%v", id, err)
		appErr := mapSettlementOpsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[settlement][handler] reset success revenue_id=%s status=%s", rev.ID, rev.Status)
	c.JSON(http.StatusOK, rev)
}

func mapSettlementOpsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRevenueID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid revenue id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRevenueNotFound):
		return pkg.NewDomainErrorSimple("REVENUE_NOT_FOUND", "Revenue not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRevenueNotResetable):
		return pkg.NewDomainErrorSimple("REVENUE_NOT_RESETABLE", "Revenue is not eligible for reset", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
