package entities

import (
	"github.com/shopspring/decimal"
)

// CollectionType discriminates payment receipts from medicine orders. Both
// share the same approval workflow.
type CollectionType string

const (
	CollectionTypeCollection CollectionType = "collection"
	CollectionTypeOrder      CollectionType = "order"
)

// ApprovalStatus is the lifecycle of a collection record or a queued order.
//
// pending -> approved and pending -> rejected are the only transitions; both
// targets are terminal.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

func (s ApprovalStatus) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

// Collection is a pharmacy payment receipt (type collection) or a medicine
// order taken at a pharmacy (type order).
//
// Storage model (key-value):
//   - key: collections
//   - value: JSON array of every record, rewritten on each mutation
type Collection struct {
	ID            string           `json:"id"`
	Type          CollectionType   `json:"type"`
	Date          string           `json:"date"`
	Pharmacy      string           `json:"pharmacy"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	ReceiptNumber string           `json:"receiptNumber,omitempty"`
	Medicine      string           `json:"medicine,omitempty"`
	Quantity      int              `json:"quantity,omitempty"`
	Status        ApprovalStatus   `json:"status"`
	GroupID       string           `json:"groupId,omitempty"`
}

// OrderGroupID is the grouping key for orders taken at one pharmacy on one day.
func OrderGroupID(pharmacy, date string) string {
	return pharmacy + "-" + date
}

// ResolveGroupID returns the stored group id, deriving it for orders persisted
// before the field existed. Collections never belong to a group.
func (c Collection) ResolveGroupID() string {
	if c.Type != CollectionTypeOrder {
		return ""
	}
	if c.GroupID != "" {
		return c.GroupID
	}
	return OrderGroupID(c.Pharmacy, c.Date)
}

// AmountOrZero returns the collected amount, zero for orders.
func (c Collection) AmountOrZero() decimal.Decimal {
	if c.Amount == nil {
		return decimal.Zero
	}
	return *c.Amount
}

// Order is an entry of the downstream fulfilment queue, seeded when an order
// group is approved.
type Order struct {
	ID       string         `json:"id"`
	Date     string         `json:"date"`
	Pharmacy string         `json:"pharmacy"`
	Medicine string         `json:"medicine"`
	Quantity int            `json:"quantity"`
	Status   ApprovalStatus `json:"status"`
}
