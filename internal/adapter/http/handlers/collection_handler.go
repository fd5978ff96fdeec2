package handlers

import (
	"errors"
	"net/http"

	request "pharma_fieldops/internal/adapter/http/dto/request"
	response "pharma_fieldops/internal/adapter/http/dto/response"
	"pharma_fieldops/internal/domain/entities"
	"pharma_fieldops/internal/usecase"
	"pharma_fieldops/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CollectionHandler handles pharmacy collections and orders and their
// approval, one record at a time or per pharmacy/day order group.

type CollectionHandler struct {
	usecase usecase.ICollectionUseCase
}

func NewCollectionHandler(uc usecase.ICollectionUseCase) *CollectionHandler {
	return &CollectionHandler{usecase: uc}
}

func (h *CollectionHandler) ListCollections(c *gin.Context) {
	listing, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapCollectionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCollectionListing(listing))
}

// CreateCollection godoc
// @Summary  Register a collection receipt or a medicine order
// @Tags     collections
// @Accept   json
// @Produce  json
// @Param    record body request.CollectionRequest true "Collection or order"
// @Success  201 {object} response.CollectionResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /collections [post]
func (h *CollectionHandler) CreateCollection(c *gin.Context) {
	var payload request.CollectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapCollectionError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCollection(created))
}

func (h *CollectionHandler) ApproveCollection(c *gin.Context) {
	h.setStatus(c, entities.StatusApproved)
}

func (h *CollectionHandler) RejectCollection(c *gin.Context) {
	h.setStatus(c, entities.StatusRejected)
}

func (h *CollectionHandler) ApproveGroup(c *gin.Context) {
	h.setGroupStatus(c, entities.StatusApproved)
}

func (h *CollectionHandler) RejectGroup(c *gin.Context) {
	h.setGroupStatus(c, entities.StatusRejected)
}

func (h *CollectionHandler) setStatus(c *gin.Context, status entities.ApprovalStatus) {
	id := c.Param("id")
	updated, err := h.usecase.SetStatus(c.Request.Context(), id, status)
	if err != nil {
		zap.L().Info("[collection][handler] status change failed",
			zap.String("id", id), zap.String("status", string(status)), zap.Error(err))
		writeError(c, mapCollectionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCollection(updated))
}

func (h *CollectionHandler) setGroupStatus(c *gin.Context, status entities.ApprovalStatus) {
	groupID := c.Param("group_id")
	decision, err := h.usecase.SetGroupStatus(c.Request.Context(), groupID, status)
	if err != nil {
		zap.L().Info("[collection][handler] group status change failed",
			zap.String("group_id", groupID), zap.String("status", string(status)), zap.Error(err))
		writeError(c, mapCollectionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromGroupDecision(decision))
}

func mapCollectionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCollectionID), errors.Is(err, usecase.ErrInvalidGroupID), errors.Is(err, usecase.ErrInvalidStatus):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidCollectionType),
		errors.Is(err, usecase.ErrInvalidPharmacy),
		errors.Is(err, usecase.ErrInvalidCollectionDate),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidReceiptNumber),
		errors.Is(err, usecase.ErrInvalidMedicine),
		errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_COLLECTION", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCollectionNotFound):
		return pkg.NewDomainErrorSimple("COLLECTION_NOT_FOUND", "Collection not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGroupNotFound):
		return pkg.NewDomainErrorSimple("ORDER_GROUP_NOT_FOUND", "Order group not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStatusNotPending):
		return pkg.NewDomainErrorSimple("STATUS_NOT_PENDING", "Only pending records can change status", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderRequiresGroup):
		return pkg.NewDomainErrorSimple("ORDER_REQUIRES_GROUP", "Orders are approved or rejected through their group", http.StatusConflict)
	case errors.Is(err, usecase.ErrReceiptNotVerified):
		return pkg.NewDomainErrorSimple("RECEIPT_NOT_VERIFIED", "Receipt payment is not approved by the provider", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrReceiptVerificationError):
		return pkg.NewDomainError("RECEIPT_VERIFICATION_FAILED", "Payment provider unavailable", err, http.StatusBadGateway)
	default:
		return internalError(err)
	}
}
