package interfaces

import (
	"context"
	"pharma_fieldops/internal/domain/entities"
)

// IRecordStore loads and persists whole record lists.
//
// Absent or malformed lists load as empty (or as the calendar defaults for
// holidays and work settings). Saves overwrite the full list.

type IRecordStore interface {
	LoadVisits(ctx context.Context) ([]entities.Visit, error)
	SaveVisits(ctx context.Context, visits []entities.Visit) error

	LoadCollections(ctx context.Context) ([]entities.Collection, error)
	SaveCollections(ctx context.Context, records []entities.Collection) error

	LoadOrders(ctx context.Context) ([]entities.Order, error)
	SaveOrders(ctx context.Context, orders []entities.Order) error

	// SaveCollectionsAndOrders writes both lists in one atomic batch.
	SaveCollectionsAndOrders(ctx context.Context, records []entities.Collection, orders []entities.Order) error

	LoadHolidays(ctx context.Context) ([]entities.Holiday, error)
	SaveHolidays(ctx context.Context, holidays []entities.Holiday) error

	LoadWorkSettings(ctx context.Context) (entities.WorkSettings, error)
	SaveWorkSettings(ctx context.Context, settings entities.WorkSettings) error

	LoadEvaluations(ctx context.Context) ([]entities.Evaluation, error)
	SaveEvaluations(ctx context.Context, evaluations []entities.Evaluation) error

	LoadSampleRequests(ctx context.Context) ([]entities.SampleRequest, error)
	SaveSampleRequests(ctx context.Context, requests []entities.SampleRequest) error
}
