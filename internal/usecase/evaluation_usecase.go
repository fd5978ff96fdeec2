package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"pharma_fieldops/internal/domain/entities"
	"pharma_fieldops/internal/domain/evaluation"
	"pharma_fieldops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidReportTitle = errors.New("invalid report title")

// IEvaluationUseCase scores evaluation forms and keeps submitted reports.

type IEvaluationUseCase interface {
	Criteria() []evaluation.Criterion
	Score(ratings entities.Ratings) evaluation.Result
	Submit(ctx context.Context, e entities.Evaluation) (entities.Evaluation, error)
	List(ctx context.Context) ([]entities.Evaluation, error)
}

type EvaluationUseCase struct {
	mu    sync.Mutex
	store interfaces.IRecordStore
}

var _ IEvaluationUseCase = (*EvaluationUseCase)(nil)

func NewEvaluationUseCase(store interfaces.IRecordStore) *EvaluationUseCase {
	return &EvaluationUseCase{store: store}
}

func (u *EvaluationUseCase) Criteria() []evaluation.Criterion {
	return evaluation.Criteria()
}

func (u *EvaluationUseCase) Score(ratings entities.Ratings) evaluation.Result {
	return evaluation.Evaluate(ratings)
}

// Submit stores a report with its derived scores. Client-sent scores, tier
// and recommendations are ignored.
func (u *EvaluationUseCase) Submit(ctx context.Context, e entities.Evaluation) (entities.Evaluation, error) {
	e.ReportTitle = strings.TrimSpace(e.ReportTitle)
	if e.ReportTitle == "" {
		return entities.Evaluation{}, ErrInvalidReportTitle
	}

	res := evaluation.Evaluate(e.Ratings)
	e.ID = uuid.NewString()
	e.Representative = strings.TrimSpace(e.Representative)
	e.Ratings = res.Ratings
	e.Scores = res.Scores
	e.Tier = res.Classification.Tier
	e.Recommendations = res.Recommendations
	e.CreatedAt = time.Now().UTC()

	u.mu.Lock()
	defer u.mu.Unlock()

	all, err := u.store.LoadEvaluations(ctx)
	if err != nil {
		return entities.Evaluation{}, err
	}
	if err := u.store.SaveEvaluations(ctx, append(all, e)); err != nil {
		return entities.Evaluation{}, err
	}
	return e, nil
}

func (u *EvaluationUseCase) List(ctx context.Context) ([]entities.Evaluation, error) {
	return u.store.LoadEvaluations(ctx)
}
