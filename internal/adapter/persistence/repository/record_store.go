package repository

import (
	"context"
	"encoding/json"
	"strings"

	"pharma_fieldops/internal/domain/calendar"
	"pharma_fieldops/internal/domain/entities"
	"pharma_fieldops/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// RecordStore maps the record lists onto a key-value store as JSON arrays.
//
// Reads never fail on bad data: a value that does not decode is logged and
// treated as absent, which yields an empty list or the calendar defaults.
// Store errors are returned as is.

type RecordStore struct {
	kv  interfaces.IKeyValueStore
	log *zap.Logger
}

var _ interfaces.IRecordStore = (*RecordStore)(nil)

func NewRecordStore(kv interfaces.IKeyValueStore, log *zap.Logger) *RecordStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &RecordStore{kv: kv, log: log}
}

// load decodes key into dst. It reports false when the key is absent, blank
// or malformed.
func (s *RecordStore) load(ctx context.Context, key string, dst any) (bool, error) {
	raw, found, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !found || strings.TrimSpace(raw) == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.log.Warn("[store][repository] malformed value, using default",
			zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

func loadList[T any](ctx context.Context, s *RecordStore, key string) ([]T, error) {
	var out []T
	ok, err := s.load(ctx, key, &out)
	if err != nil {
		return nil, err
	}
	if !ok || out == nil {
		return []T{}, nil
	}
	return out, nil
}

func encodeList[T any](list []T) (string, error) {
	if list == nil {
		list = []T{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func saveList[T any](ctx context.Context, s *RecordStore, key string, list []T) error {
	v, err := encodeList(list)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, v)
}

func (s *RecordStore) LoadVisits(ctx context.Context) ([]entities.Visit, error) {
	return loadList[entities.Visit](ctx, s, KeyVisits)
}

func (s *RecordStore) SaveVisits(ctx context.Context, visits []entities.Visit) error {
	return saveList(ctx, s, KeyVisits, visits)
}

func (s *RecordStore) LoadCollections(ctx context.Context) ([]entities.Collection, error) {
	return loadList[entities.Collection](ctx, s, KeyCollections)
}

func (s *RecordStore) SaveCollections(ctx context.Context, records []entities.Collection) error {
	return saveList(ctx, s, KeyCollections, records)
}

func (s *RecordStore) LoadOrders(ctx context.Context) ([]entities.Order, error) {
	return loadList[entities.Order](ctx, s, KeyOrders)
}

func (s *RecordStore) SaveOrders(ctx context.Context, orders []entities.Order) error {
	return saveList(ctx, s, KeyOrders, orders)
}

func (s *RecordStore) SaveCollectionsAndOrders(ctx context.Context, records []entities.Collection, orders []entities.Order) error {
	collections, err := encodeList(records)
	if err != nil {
		return err
	}
	queue, err := encodeList(orders)
	if err != nil {
		return err
	}
	return s.kv.SetMany(ctx, map[string]string{
		KeyCollections: collections,
		KeyOrders:      queue,
	})
}

// LoadHolidays returns the default holidays until a list has been saved. A
// saved empty list stays empty.
func (s *RecordStore) LoadHolidays(ctx context.Context) ([]entities.Holiday, error) {
	var out []entities.Holiday
	ok, err := s.load(ctx, KeyWorkCalendarHolidays, &out)
	if err != nil {
		return nil, err
	}
	if !ok {
		return calendar.DefaultHolidays(), nil
	}
	if out == nil {
		out = []entities.Holiday{}
	}
	return out, nil
}

func (s *RecordStore) SaveHolidays(ctx context.Context, holidays []entities.Holiday) error {
	return saveList(ctx, s, KeyWorkCalendarHolidays, holidays)
}

func (s *RecordStore) LoadWorkSettings(ctx context.Context) (entities.WorkSettings, error) {
	var out entities.WorkSettings
	ok, err := s.load(ctx, KeyWorkCalendarSettings, &out)
	if err != nil {
		return entities.WorkSettings{}, err
	}
	if !ok {
		return calendar.DefaultSettings(), nil
	}
	if out.WeeklyHolidays == nil {
		out.WeeklyHolidays = []int{}
	}
	return out, nil
}

func (s *RecordStore) SaveWorkSettings(ctx context.Context, settings entities.WorkSettings) error {
	if settings.WeeklyHolidays == nil {
		settings.WeeklyHolidays = []int{}
	}
	b, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, KeyWorkCalendarSettings, string(b))
}

func (s *RecordStore) LoadEvaluations(ctx context.Context) ([]entities.Evaluation, error) {
	return loadList[entities.Evaluation](ctx, s, KeyEvaluations)
}

func (s *RecordStore) SaveEvaluations(ctx context.Context, evaluations []entities.Evaluation) error {
	return saveList(ctx, s, KeyEvaluations, evaluations)
}

func (s *RecordStore) LoadSampleRequests(ctx context.Context) ([]entities.SampleRequest, error) {
	return loadList[entities.SampleRequest](ctx, s, KeySampleRequests)
}

func (s *RecordStore) SaveSampleRequests(ctx context.Context, requests []entities.SampleRequest) error {
	return saveList(ctx, s, KeySampleRequests, requests)
}
