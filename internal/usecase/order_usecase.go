package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pharma_fieldops/internal/domain/entities"
	"pharma_fieldops/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidOrderID = errors.New("invalid order id")
)

// IOrderUseCase manages the fulfilment queue seeded by approved order groups.

type IOrderUseCase interface {
	List(ctx context.Context) ([]entities.Order, error)
	SetStatus(ctx context.Context, id string, status entities.ApprovalStatus) (entities.Order, error)
}

type OrderUseCase struct {
	mu    *sync.Mutex
	store interfaces.IRecordStore
	log   *zap.Logger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

// NewOrderUseCase shares mu with the CollectionUseCase writing the same
// orders list.
func NewOrderUseCase(store interfaces.IRecordStore, mu *sync.Mutex, log *zap.Logger) *OrderUseCase {
	if mu == nil {
		mu = &sync.Mutex{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderUseCase{mu: mu, store: store, log: log}
}

func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	return u.store.LoadOrders(ctx)
}

func (u *OrderUseCase) SetStatus(ctx context.Context, id string, status entities.ApprovalStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !status.IsDecision() {
		return entities.Order{}, ErrInvalidStatus
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	orders, err := u.store.LoadOrders(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		if orders[i].Status != entities.StatusPending {
			return entities.Order{}, ErrStatusNotPending
		}
		orders[i].Status = status
		if err := u.store.SaveOrders(ctx, orders); err != nil {
			return entities.Order{}, err
		}
		u.log.Info("[order][usecase] status changed", zap.String("id", id), zap.String("status", string(status)))
		return orders[i], nil
	}
	return entities.Order{}, ErrOrderNotFound
}
