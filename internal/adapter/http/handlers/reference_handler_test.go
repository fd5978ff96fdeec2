package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"pharma_fieldops/internal/adapter/http/handlers/mocks"
	"pharma_fieldops/internal/domain/filtering"
	"pharma_fieldops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReferenceHandler_GetDoctorProducts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReferenceUseCase(ctrl)
		h := NewReferenceHandler(uc)

		r := gin.New()
		r.GET("/v1/reference/doctors/:name/products", h.GetDoctorProducts)

		uc.EXPECT().DoctorProducts("dr-1").Return(filtering.ProductOptions{
			Products1: []string{"Panadol"}, Products2: []string{"Nexium"}, Products3: []string{"Concor"},
		}, nil)

		w := performRequest(r, http.MethodGet, "/v1/reference/doctors/dr-1/products", "")
		expectStatus(t, w, http.StatusOK)

		var body filtering.ProductOptions
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Products2[0] != "Nexium" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("unknown doctor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReferenceUseCase(ctrl)
		h := NewReferenceHandler(uc)

		r := gin.New()
		r.GET("/v1/reference/doctors/:name/products", h.GetDoctorProducts)

		uc.EXPECT().DoctorProducts("nobody").Return(filtering.ProductOptions{}, usecase.ErrDoctorNotFound)

		w := performRequest(r, http.MethodGet, "/v1/reference/doctors/nobody/products", "")
		expectStatus(t, w, http.StatusNotFound)
		if decodeError(t, w).Code != "DOCTOR_NOT_FOUND" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestReferenceHandler_Tables(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReferenceUseCase(ctrl)
	h := NewReferenceHandler(uc)

	r := gin.New()
	r.GET("/v1/reference/brands", h.GetBrands)
	r.GET("/v1/reference/classifications", h.GetClassifications)

	uc.EXPECT().Brands().Return([]string{"فايزر"})
	uc.EXPECT().Classifications().Return([]string{"Class A", "Class B", "Class C"})

	w := performRequest(r, http.MethodGet, "/v1/reference/brands", "")
	expectStatus(t, w, http.StatusOK)
	if w.Body.String() != `["فايزر"]` {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	w = performRequest(r, http.MethodGet, "/v1/reference/classifications", "")
	expectStatus(t, w, http.StatusOK)
}
