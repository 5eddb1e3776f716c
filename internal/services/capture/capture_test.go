package capture

import (
	"context"
	"testing"

	"linkgate/internal/domain/models"
	"linkgate/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRecorder(t *testing.T) (*Recorder, *mocks.MockSubmissionStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockStorage := mocks.NewMockSubmissionStorage(ctrl)
	return NewRecorder(mockStorage), mockStorage
}

func TestRecorder_Record(t *testing.T) {
	ctx := context.Background()

	fields := []models.Field{
		{Name: "username", Value: "bob"},
		{Name: "password", Value: "x"},
	}

	t.Run("Успешная запись", func(t *testing.T) {
		recorder, mockStorage := newRecorder(t)

		mockStorage.EXPECT().
			SubmissionCreate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sub models.Submission) (models.Submission, error) {
				assert.NotEqual(t, uuid.Nil, sub.ID)
				assert.Equal(t, "ab12cd", sub.Code)
				assert.Equal(t, fields, sub.Fields, "порядок полей сохраняется")
				assert.False(t, sub.RecordedAt.IsZero())
				return sub, nil
			})

		sub, err := recorder.Record(ctx, "ab12cd", fields)
		require.NoError(t, err)
		assert.Equal(t, "ab12cd", sub.Code)
	})

	t.Run("Несуществующий код - записи нет", func(t *testing.T) {
		recorder, mockStorage := newRecorder(t)

		mockStorage.EXPECT().
			SubmissionCreate(gomock.Any(), gomock.Any()).
			Return(models.Submission{}, models.ErrInvalidCode)

		_, err := recorder.Record(ctx, "zzzzzz", fields)
		assert.ErrorIs(t, err, models.ErrInvalidCode)
	})

	t.Run("Повторная отправка дает новую независимую запись", func(t *testing.T) {
		recorder, mockStorage := newRecorder(t)

		var seen []uuid.UUID
		mockStorage.EXPECT().
			SubmissionCreate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sub models.Submission) (models.Submission, error) {
				seen = append(seen, sub.ID)
				return sub, nil
			}).
			Times(2)

		first, err := recorder.Record(ctx, "ab12cd", fields)
		require.NoError(t, err)
		second, err := recorder.Record(ctx, "ab12cd", fields)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.Len(t, seen, 2)
	})

	t.Run("Пустые аргументы", func(t *testing.T) {
		recorder, _ := newRecorder(t)

		_, err := recorder.Record(ctx, "", fields)
		assert.ErrorIs(t, err, models.ErrInvalidData)

		_, err = recorder.Record(ctx, "ab12cd", nil)
		assert.ErrorIs(t, err, models.ErrInvalidData)
	})
}
