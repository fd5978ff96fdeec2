package handlers

import (
	"errors"
	"net/http"

	"pharma_fieldops/internal/usecase"
	"pharma_fieldops/pkg"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the static tables behind the console selectors.

type ReferenceHandler struct {
	usecase usecase.IReferenceUseCase
}

func NewReferenceHandler(uc usecase.IReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{usecase: uc}
}

// GetLocations godoc
// @Summary  Location tree (country, area, city)
// @Tags     reference
// @Produce  json
// @Success  200 {array} reference.Country
// @Router   /reference/locations [get]
func (h *ReferenceHandler) GetLocations(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Locations())
}

func (h *ReferenceHandler) GetBrands(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Brands())
}

func (h *ReferenceHandler) GetClassifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Classifications())
}

func (h *ReferenceHandler) GetSpecialties(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Specialties())
}

func (h *ReferenceHandler) GetDoctors(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Doctors())
}

// GetDoctorProducts returns the three product lists of one doctor.
func (h *ReferenceHandler) GetDoctorProducts(c *gin.Context) {
	products, err := h.usecase.DoctorProducts(c.Param("name"))
	if err != nil {
		writeError(c, mapReferenceError(err))
		return
	}
	c.JSON(http.StatusOK, products)
}

func mapReferenceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDoctorName):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrDoctorNotFound):
		return pkg.NewDomainErrorSimple("DOCTOR_NOT_FOUND", "Doctor not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
