package handlers

import (
	"errors"
	"net/http"

	"pharma_fieldops/internal/domain/entities"
	"pharma_fieldops/internal/usecase"
	"pharma_fieldops/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes the fulfilment queue fed by approved order groups.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) ApproveOrder(c *gin.Context) {
	h.setStatus(c, entities.StatusApproved)
}

func (h *OrderHandler) RejectOrder(c *gin.Context) {
	h.setStatus(c, entities.StatusRejected)
}

func (h *OrderHandler) setStatus(c *gin.Context, status entities.ApprovalStatus) {
	order, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, order)
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidStatus):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStatusNotPending):
		return pkg.NewDomainErrorSimple("STATUS_NOT_PENDING", "Only pending orders can change status", http.StatusConflict)
	default:
		return internalError(err)
	}
}
