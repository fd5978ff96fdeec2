package response

import (
	"pharma_fieldops/internal/domain/entities"
	"pharma_fieldops/internal/usecase"
)

// CollectionResponse renders amounts with two decimals, the way receipts are
// printed.
type CollectionResponse struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Date          string `json:"date"`
	Pharmacy      string `json:"pharmacy"`
	Amount        string `json:"amount,omitempty"`
	ReceiptNumber string `json:"receiptNumber,omitempty"`
	Medicine      string `json:"medicine,omitempty"`
	Quantity      int    `json:"quantity,omitempty"`
	Status        string `json:"status"`
	GroupID       string `json:"groupId,omitempty"`
}

func FromCollection(c entities.Collection) CollectionResponse {
	res := CollectionResponse{
		ID:            c.ID,
		Type:          string(c.Type),
		Date:          c.Date,
		Pharmacy:      c.Pharmacy,
		ReceiptNumber: c.ReceiptNumber,
		Medicine:      c.Medicine,
		Quantity:      c.Quantity,
		Status:        string(c.Status),
		GroupID:       c.ResolveGroupID(),
	}
	if c.Amount != nil {
		res.Amount = c.Amount.StringFixed(2)
	}
	return res
}

func FromCollections(records []entities.Collection) []CollectionResponse {
	out := make([]CollectionResponse, 0, len(records))
	for _, c := range records {
		out = append(out, FromCollection(c))
	}
	return out
}

type OrderGroupResponse struct {
	ID       string               `json:"id"`
	Pharmacy string               `json:"pharmacy"`
	Date     string               `json:"date"`
	Status   string               `json:"status"`
	Orders   []CollectionResponse `json:"orders"`
}

type CollectionListingResponse struct {
	Collections []CollectionResponse `json:"collections"`
	OrderGroups []OrderGroupResponse `json:"orderGroups"`
}

func FromCollectionListing(l usecase.CollectionListing) CollectionListingResponse {
	groups := make([]OrderGroupResponse, 0, len(l.OrderGroups))
	for _, g := range l.OrderGroups {
		groups = append(groups, OrderGroupResponse{
			ID:       g.ID,
			Pharmacy: g.Pharmacy,
			Date:     g.Date,
			Status:   string(g.Status),
			Orders:   FromCollections(g.Orders),
		})
	}
	return CollectionListingResponse{
		Collections: FromCollections(l.Collections),
		OrderGroups: groups,
	}
}

type GroupDecisionResponse struct {
	GroupID string               `json:"groupId"`
	Status  string               `json:"status"`
	Records []CollectionResponse `json:"records"`
	Orders  []entities.Order     `json:"orders"`
}

func FromGroupDecision(d usecase.GroupDecision) GroupDecisionResponse {
	orders := d.Orders
	if orders == nil {
		orders = []entities.Order{}
	}
	return GroupDecisionResponse{
		GroupID: d.GroupID,
		Status:  string(d.Status),
		Records: FromCollections(d.Records),
		Orders:  orders,
	}
}
