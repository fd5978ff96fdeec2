package request

import (
	"strings"

	"pharma_fieldops/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CollectionRequest registers a payment receipt (type collection) or a
// medicine order (type order) taken at a pharmacy.
type CollectionRequest struct {
	Type          string           `json:"type" binding:"required"`
	Date          string           `json:"date" binding:"required"`
	Pharmacy      string           `json:"pharmacy" binding:"required"`
	Amount        *decimal.Decimal `json:"amount"`
	ReceiptNumber string           `json:"receiptNumber"`
	Medicine      string           `json:"medicine"`
	Quantity      int              `json:"quantity"`
}

func (r CollectionRequest) ToEntity() entities.Collection {
	c := entities.Collection{
		Type:          entities.CollectionType(strings.ToLower(strings.TrimSpace(r.Type))),
		Date:          strings.TrimSpace(r.Date),
		Pharmacy:      strings.TrimSpace(r.Pharmacy),
		ReceiptNumber: strings.TrimSpace(r.ReceiptNumber),
		Medicine:      strings.TrimSpace(r.Medicine),
		Quantity:      r.Quantity,
	}
	if r.Amount != nil {
		amount := *r.Amount
		c.Amount = &amount
	}
	return c
}
