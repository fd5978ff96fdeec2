package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"pharma_fieldops/internal/domain/entities"
	"pharma_fieldops/internal/domain/reference"
	"pharma_fieldops/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidRequestDate    = errors.New("invalid request date")
	ErrInvalidDeliveryDate   = errors.New("invalid delivery date")
	ErrDeliveryBeforeRequest = errors.New("delivery date must not be before the request date")
	ErrInvalidSampleMedicine = errors.New("invalid medicine")
	ErrInvalidSampleQuantity = errors.New("quantity must be greater than zero")
)

// ISampleUseCase keeps the sample requests logged by representatives.

type ISampleUseCase interface {
	Create(ctx context.Context, s entities.SampleRequest) (entities.SampleRequest, error)
	List(ctx context.Context) ([]entities.SampleRequest, error)
}

type SampleUseCase struct {
	mu    sync.Mutex
	store interfaces.IRecordStore
	ref   *reference.Data
	log   *zap.Logger
}

var _ ISampleUseCase = (*SampleUseCase)(nil)

func NewSampleUseCase(store interfaces.IRecordStore, ref *reference.Data, log *zap.Logger) *SampleUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &SampleUseCase{store: store, ref: ref, log: log}
}

func (u *SampleUseCase) validate(s entities.SampleRequest) (entities.SampleRequest, error) {
	s.DoctorName = strings.TrimSpace(s.DoctorName)
	s.Medicine = strings.TrimSpace(s.Medicine)
	s.RequestDate = strings.TrimSpace(s.RequestDate)
	s.DeliveryDate = strings.TrimSpace(s.DeliveryDate)
	s.Notes = strings.TrimSpace(s.Notes)

	if s.DoctorName == "" {
		return s, ErrInvalidDoctorName
	}
	if _, ok := u.ref.Doctor(s.DoctorName); !ok {
		return s, ErrDoctorNotFound
	}
	if s.Medicine == "" {
		return s, ErrInvalidSampleMedicine
	}
	if s.Quantity <= 0 {
		return s, ErrInvalidSampleQuantity
	}
	requested, err := time.Parse("2006-01-02", s.RequestDate)
	if err != nil {
		return s, ErrInvalidRequestDate
	}
	delivery, err := time.Parse("2006-01-02", s.DeliveryDate)
	if err != nil {
		return s, ErrInvalidDeliveryDate
	}
	if delivery.Before(requested) {
		return s, ErrDeliveryBeforeRequest
	}
	return s, nil
}

// Create validates and appends a sample request. The doctor must be in the
// reference directory.
func (u *SampleUseCase) Create(ctx context.Context, s entities.SampleRequest) (entities.SampleRequest, error) {
	s, err := u.validate(s)
	if err != nil {
		return entities.SampleRequest{}, err
	}
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC()

	u.mu.Lock()
	defer u.mu.Unlock()

	all, err := u.store.LoadSampleRequests(ctx)
	if err != nil {
		return entities.SampleRequest{}, err
	}
	if err := u.store.SaveSampleRequests(ctx, append(all, s)); err != nil {
		return entities.SampleRequest{}, err
	}
	u.log.Info("[sample][usecase] requested",
		zap.String("id", s.ID), zap.String("doctor", s.DoctorName), zap.String("medicine", s.Medicine), zap.Int("quantity", s.Quantity))
	return s, nil
}

func (u *SampleUseCase) List(ctx context.Context) ([]entities.SampleRequest, error) {
	return u.store.LoadSampleRequests(ctx)
}
