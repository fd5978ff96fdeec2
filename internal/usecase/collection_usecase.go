package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"pharma_fieldops/internal/domain/entities"
	"pharma_fieldops/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrCollectionNotFound       = errors.New("collection not found")
	ErrGroupNotFound            = errors.New("order group not found")
	ErrInvalidCollectionID      = errors.New("invalid collection id")
	ErrInvalidGroupID           = errors.New("invalid group id")
	ErrInvalidStatus            = errors.New("status must be approved or rejected")
	ErrStatusNotPending         = errors.New("only pending records can change status")
	ErrInvalidCollectionType    = errors.New("type must be collection or order")
	ErrInvalidPharmacy          = errors.New("invalid pharmacy")
	ErrInvalidCollectionDate    = errors.New("invalid collection date")
	ErrInvalidAmount            = errors.New("amount must be greater than zero")
	ErrInvalidReceiptNumber     = errors.New("invalid receipt number")
	ErrInvalidMedicine          = errors.New("invalid medicine")
	ErrInvalidQuantity          = errors.New("quantity must be greater than zero")
	ErrReceiptNotVerified       = errors.New("receipt payment is not approved by the provider")
	ErrReceiptVerificationError = errors.New("receipt verification failed")
	ErrOrderRequiresGroup       = errors.New("orders change status through their pharmacy/day group")
)

// OrderGroup is the orders taken at one pharmacy on one day. Its status is
// the status of its first order.
type OrderGroup struct {
	ID       string                  `json:"id"`
	Pharmacy string                  `json:"pharmacy"`
	Date     string                  `json:"date"`
	Status   entities.ApprovalStatus `json:"status"`
	Orders   []entities.Collection   `json:"orders"`
}

// CollectionListing is the approval screen: money collections one by one and
// orders grouped per pharmacy and day, both in stored order.
type CollectionListing struct {
	Collections []entities.Collection `json:"collections"`
	OrderGroups []OrderGroup          `json:"orderGroups"`
}

// GroupDecision reports a group transition and the queue entries it created.
type GroupDecision struct {
	GroupID string                  `json:"groupId"`
	Status  entities.ApprovalStatus `json:"status"`
	Records []entities.Collection   `json:"records"`
	Orders  []entities.Order        `json:"orders"`
}

// ICollectionUseCase is the collection/order approval workflow.
//
// pending -> approved and pending -> rejected are the only transitions:
//   - SetStatus(): one collection record by id; orders are refused
//   - SetGroupStatus(): every pending order of a pharmacy/day group; approval
//     seeds one pending fulfilment order per record, written atomically with
//     the status change

type ICollectionUseCase interface {
	Create(ctx context.Context, c entities.Collection) (entities.Collection, error)
	List(ctx context.Context) (CollectionListing, error)
	SetStatus(ctx context.Context, id string, status entities.ApprovalStatus) (entities.Collection, error)
	SetGroupStatus(ctx context.Context, groupID string, status entities.ApprovalStatus) (GroupDecision, error)
}

type CollectionUseCase struct {
	mu       *sync.Mutex
	store    interfaces.IRecordStore
	verifier interfaces.IReceiptVerifier
	log      *zap.Logger
}

var _ ICollectionUseCase = (*CollectionUseCase)(nil)

// NewCollectionUseCase builds the workflow. mu guards the collections and
// orders lists and must be shared with the OrderUseCase of the same store;
// nil allocates a private lock. verifier may be nil to skip receipt checks.
func NewCollectionUseCase(store interfaces.IRecordStore, verifier interfaces.IReceiptVerifier, mu *sync.Mutex, log *zap.Logger) *CollectionUseCase {
	if mu == nil {
		mu = &sync.Mutex{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CollectionUseCase{mu: mu, store: store, verifier: verifier, log: log}
}

func validateCollection(c entities.Collection) (entities.Collection, error) {
	c.Pharmacy = strings.TrimSpace(c.Pharmacy)
	c.Date = strings.TrimSpace(c.Date)
	c.ReceiptNumber = strings.TrimSpace(c.ReceiptNumber)
	c.Medicine = strings.TrimSpace(c.Medicine)

	if c.Pharmacy == "" {
		return c, ErrInvalidPharmacy
	}
	if _, err := time.Parse("2006-01-02", c.Date); err != nil {
		return c, ErrInvalidCollectionDate
	}

	switch c.Type {
	case entities.CollectionTypeCollection:
		if c.Amount == nil || !c.Amount.IsPositive() {
			return c, ErrInvalidAmount
		}
		if c.ReceiptNumber == "" {
			return c, ErrInvalidReceiptNumber
		}
		c.Medicine, c.Quantity, c.GroupID = "", 0, ""
	case entities.CollectionTypeOrder:
		if c.Medicine == "" {
			return c, ErrInvalidMedicine
		}
		if c.Quantity <= 0 {
			return c, ErrInvalidQuantity
		}
		c.Amount, c.ReceiptNumber = nil, ""
		c.GroupID = entities.OrderGroupID(c.Pharmacy, c.Date)
	default:
		return c, ErrInvalidCollectionType
	}
	return c, nil
}

// Create stores a new pending record.
func (u *CollectionUseCase) Create(ctx context.Context, c entities.Collection) (entities.Collection, error) {
	c, err := validateCollection(c)
	if err != nil {
		return entities.Collection{}, err
	}
	c.ID = uuid.NewString()
	c.Status = entities.StatusPending

	u.mu.Lock()
	defer u.mu.Unlock()

	records, err := u.store.LoadCollections(ctx)
	if err != nil {
		return entities.Collection{}, err
	}
	if err := u.store.SaveCollections(ctx, append(records, c)); err != nil {
		return entities.Collection{}, err
	}
	u.log.Info("[collection][usecase] created",
		zap.String("id", c.ID), zap.String("type", string(c.Type)), zap.String("pharmacy", c.Pharmacy))
	return c, nil
}

func (u *CollectionUseCase) List(ctx context.Context) (CollectionListing, error) {
	records, err := u.store.LoadCollections(ctx)
	if err != nil {
		return CollectionListing{}, err
	}

	out := CollectionListing{Collections: []entities.Collection{}, OrderGroups: []OrderGroup{}}
	index := map[string]int{}
	for _, r := range records {
		if r.Type != entities.CollectionTypeOrder {
			out.Collections = append(out.Collections, r)
			continue
		}
		gid := r.ResolveGroupID()
		i, ok := index[gid]
		if !ok {
			i = len(out.OrderGroups)
			index[gid] = i
			out.OrderGroups = append(out.OrderGroups, OrderGroup{ID: gid, Pharmacy: r.Pharmacy, Date: r.Date, Status: r.Status})
		}
		out.OrderGroups[i].Orders = append(out.OrderGroups[i].Orders, r)
	}
	return out, nil
}

func (u *CollectionUseCase) SetStatus(ctx context.Context, id string, status entities.ApprovalStatus) (entities.Collection, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Collection{}, ErrInvalidCollectionID
	}
	if !status.IsDecision() {
		return entities.Collection{}, ErrInvalidStatus
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	records, err := u.store.LoadCollections(ctx)
	if err != nil {
		return entities.Collection{}, err
	}
	i := -1
	for k := range records {
		if records[k].ID == id {
			i = k
			break
		}
	}
	if i < 0 {
		return entities.Collection{}, ErrCollectionNotFound
	}
	if records[i].Type == entities.CollectionTypeOrder {
		return entities.Collection{}, ErrOrderRequiresGroup
	}
	if records[i].Status != entities.StatusPending {
		return entities.Collection{}, ErrStatusNotPending
	}
	if status == entities.StatusApproved {
		if err := u.verifyReceipt(ctx, records[i]); err != nil {
			return entities.Collection{}, err
		}
	}

	records[i].Status = status
	if err := u.store.SaveCollections(ctx, records); err != nil {
		return entities.Collection{}, err
	}
	u.log.Info("[collection][usecase] status changed", zap.String("id", id), zap.String("status", string(status)))
	return records[i], nil
}

func (u *CollectionUseCase) verifyReceipt(ctx context.Context, c entities.Collection) error {
	if u.verifier == nil {
		return nil
	}
	ok, providerStatus, err := u.verifier.VerifyReceipt(ctx, c.ReceiptNumber)
	if err != nil {
		u.log.Error("[collection][usecase] receipt verification failed",
			zap.String("id", c.ID), zap.String("receipt", c.ReceiptNumber), zap.Error(err))
		return errors.Join(ErrReceiptVerificationError, err)
	}
	if !ok {
		u.log.Warn("[collection][usecase] receipt not approved",
			zap.String("id", c.ID), zap.String("receipt", c.ReceiptNumber), zap.String("provider_status", providerStatus))
		return ErrReceiptNotVerified
	}
	return nil
}

func (u *CollectionUseCase) SetGroupStatus(ctx context.Context, groupID string, status entities.ApprovalStatus) (GroupDecision, error) {
	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return GroupDecision{}, ErrInvalidGroupID
	}
	if !status.IsDecision() {
		return GroupDecision{}, ErrInvalidStatus
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	records, err := u.store.LoadCollections(ctx)
	if err != nil {
		return GroupDecision{}, err
	}

	decision := GroupDecision{GroupID: groupID, Status: status, Records: []entities.Collection{}, Orders: []entities.Order{}}
	found := false
	for i := range records {
		r := &records[i]
		if r.Type != entities.CollectionTypeOrder || r.ResolveGroupID() != groupID {
			continue
		}
		found = true
		if r.Status != entities.StatusPending {
			continue
		}
		r.Status = status
		r.GroupID = groupID
		decision.Records = append(decision.Records, *r)
	}
	if !found {
		return GroupDecision{}, ErrGroupNotFound
	}
	if len(decision.Records) == 0 {
		return GroupDecision{}, ErrStatusNotPending
	}

	if status != entities.StatusApproved {
		if err := u.store.SaveCollections(ctx, records); err != nil {
			return GroupDecision{}, err
		}
		u.log.Info("[collection][usecase] group rejected", zap.String("group_id", groupID), zap.Int("records", len(decision.Records)))
		return decision, nil
	}

	queue, err := u.store.LoadOrders(ctx)
	if err != nil {
		return GroupDecision{}, err
	}
	for _, r := range decision.Records {
		id, err := uuid.NewV7()
		if err != nil {
			return GroupDecision{}, err
		}
		decision.Orders = append(decision.Orders, entities.Order{
			ID:       id.String(),
			Date:     r.Date,
			Pharmacy: r.Pharmacy,
			Medicine: r.Medicine,
			Quantity: r.Quantity,
			Status:   entities.StatusPending,
		})
	}
	if err := u.store.SaveCollectionsAndOrders(ctx, records, append(queue, decision.Orders...)); err != nil {
		return GroupDecision{}, err
	}
	u.log.Info("[collection][usecase] group approved",
		zap.String("group_id", groupID), zap.Int("records", len(decision.Records)), zap.Int("orders", len(decision.Orders)))
	return decision, nil
}
