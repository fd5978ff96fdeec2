package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	response "pharma_fieldops/internal/adapter/http/dto/response"
	"pharma_fieldops/internal/adapter/http/handlers/mocks"
	"pharma_fieldops/internal/domain/entities"
	"pharma_fieldops/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func collectionRouter(h *CollectionHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/collections", h.ListCollections)
	r.POST("/v1/collections", h.CreateCollection)
	r.PATCH("/v1/collections/:id/approve", h.ApproveCollection)
	r.PATCH("/v1/collections/:id/reject", h.RejectCollection)
	r.PATCH("/v1/collections/groups/:group_id/approve", h.ApproveGroup)
	r.PATCH("/v1/collections/groups/:group_id/reject", h.RejectGroup)
	return r
}

func TestCollectionHandler_CreateCollection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := collectionRouter(NewCollectionHandler(mocks.NewMockICollectionUseCase(ctrl)))

		w := performRequest(r, http.MethodPost, "/v1/collections", `{"type":"collection","amount":"abc"}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICollectionUseCase(ctrl)
		r := collectionRouter(NewCollectionHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Collection{}, usecase.ErrInvalidAmount)

		w := performRequest(r, http.MethodPost, "/v1/collections", `{"type":"collection","date":"2024-03-01","pharmacy":"p","amount":0}`)
		expectStatus(t, w, http.StatusBadRequest)
		if decodeError(t, w).Code != "INVALID_COLLECTION" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICollectionUseCase(ctrl)
		r := collectionRouter(NewCollectionHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Collection) (entities.Collection, error) {
			if c.Amount == nil || c.Amount.String() != "250.5" {
				t.Fatalf("unexpected amount: %v", c.Amount)
			}
			c.ID = "c-1"
			c.Status = entities.StatusPending
			return c, nil
		})

		w := performRequest(r, http.MethodPost, "/v1/collections",
			`{"type":"collection","date":"2024-03-01","pharmacy":"صيدلية النهدي","amount":"250.50","receiptNumber":"1234"}`)
		expectStatus(t, w, http.StatusCreated)

		var body response.CollectionResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.ID != "c-1" || body.Amount != "250.50" || body.Status != "pending" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestCollectionHandler_SetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", usecase.ErrCollectionNotFound, http.StatusNotFound, "COLLECTION_NOT_FOUND"},
		{"already decided", usecase.ErrStatusNotPending, http.StatusConflict, "STATUS_NOT_PENDING"},
		{"order outside its group", usecase.ErrOrderRequiresGroup, http.StatusConflict, "ORDER_REQUIRES_GROUP"},
		{"receipt not approved", usecase.ErrReceiptNotVerified, http.StatusUnprocessableEntity, "RECEIPT_NOT_VERIFIED"},
		{"provider down", fmt.Errorf("%w: timeout", usecase.ErrReceiptVerificationError), http.StatusBadGateway, "RECEIPT_VERIFICATION_FAILED"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockICollectionUseCase(ctrl)
			r := collectionRouter(NewCollectionHandler(uc))

			uc.EXPECT().SetStatus(gomock.Any(), "c-1", entities.StatusApproved).Return(entities.Collection{}, tc.err)

			w := performRequest(r, http.MethodPatch, "/v1/collections/c-1/approve", "")
			expectStatus(t, w, tc.status)
			if decodeError(t, w).Code != tc.code {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
		})
	}

	t.Run("reject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICollectionUseCase(ctrl)
		r := collectionRouter(NewCollectionHandler(uc))

		uc.EXPECT().SetStatus(gomock.Any(), "c-2", entities.StatusRejected).
			Return(entities.Collection{ID: "c-2", Type: entities.CollectionTypeCollection, Status: entities.StatusRejected}, nil)

		w := performRequest(r, http.MethodPatch, "/v1/collections/c-2/reject", "")
		expectStatus(t, w, http.StatusOK)
	})
}

func TestCollectionHandler_SetGroupStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve seeds orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICollectionUseCase(ctrl)
		r := collectionRouter(NewCollectionHandler(uc))

		uc.EXPECT().SetGroupStatus(gomock.Any(), "p-2024-03-01", entities.StatusApproved).Return(usecase.GroupDecision{
			GroupID: "p-2024-03-01",
			Status:  entities.StatusApproved,
			Records: []entities.Collection{{ID: "o1", Type: entities.CollectionTypeOrder, Pharmacy: "p", Date: "2024-03-01", Medicine: "Panadol", Quantity: 3, Status: entities.StatusApproved}},
			Orders:  []entities.Order{{ID: "q1", Pharmacy: "p", Date: "2024-03-01", Medicine: "Panadol", Quantity: 3, Status: entities.StatusPending}},
		}, nil)

		w := performRequest(r, http.MethodPatch, "/v1/collections/groups/p-2024-03-01/approve", "")
		expectStatus(t, w, http.StatusOK)

		var body response.GroupDecisionResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body.Orders) != 1 || body.Orders[0].Status != entities.StatusPending || body.Records[0].GroupID != "p-2024-03-01" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("unknown group", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICollectionUseCase(ctrl)
		r := collectionRouter(NewCollectionHandler(uc))

		uc.EXPECT().SetGroupStatus(gomock.Any(), "g", entities.StatusRejected).Return(usecase.GroupDecision{}, usecase.ErrGroupNotFound)

		w := performRequest(r, http.MethodPatch, "/v1/collections/groups/g/reject", "")
		expectStatus(t, w, http.StatusNotFound)
	})
}

func TestCollectionHandler_ListCollections(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICollectionUseCase(ctrl)
	r := collectionRouter(NewCollectionHandler(uc))

	amount := decimal.RequireFromString("10")
	uc.EXPECT().List(gomock.Any()).Return(usecase.CollectionListing{
		Collections: []entities.Collection{{ID: "c1", Type: entities.CollectionTypeCollection, Amount: &amount, Status: entities.StatusPending}},
	}, nil)

	w := performRequest(r, http.MethodGet, "/v1/collections", "")
	expectStatus(t, w, http.StatusOK)

	var body response.CollectionListingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body.Collections) != 1 || body.Collections[0].Amount != "10.00" || body.OrderGroups == nil {
		t.Fatalf("unexpected body: %+v", body)
	}
}
