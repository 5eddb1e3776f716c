package capture

import (
	"context"
	"errors"
	"fmt"
	"time"

	"linkgate/internal/domain/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=capture.go -destination=../../mocks/mock_submission_storage.go -package=mocks
type SubmissionStorage interface {
	// SubmissionCreate записывает Submission одним атомарным append.
	// Возвращает models.ErrInvalidCode если код не ссылается на существующий Link.
	SubmissionCreate(ctx context.Context, sub models.Submission) (models.Submission, error)
}

// Recorder пишет захваченные поля формы против кода ссылки.
type Recorder struct {
	storage SubmissionStorage
}

func NewRecorder(storage SubmissionStorage) *Recorder {
	return &Recorder{storage: storage}
}

// Record сохраняет одну отправку формы целиком.
// Дедупликации нет намеренно: повторная отправка тех же значений
// дает новую независимую запись.
func (r *Recorder) Record(ctx context.Context, code string, fields []models.Field) (models.Submission, error) {
	if code == "" || len(fields) == 0 {
		return models.Submission{}, models.ErrInvalidData
	}

	sub := models.Submission{
		ID:         uuid.New(),
		Code:       code,
		Fields:     fields,
		RecordedAt: time.Now().UTC(),
	}

	created, err := r.storage.SubmissionCreate(ctx, sub)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCode) {
			return models.Submission{}, fmt.Errorf("%w: code %q", models.ErrInvalidCode, code)
		}
		return models.Submission{}, fmt.Errorf("failed to record submission: %w", err)
	}

	return created, nil
}
