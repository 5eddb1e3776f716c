package links

import (
	"context"
	"errors"
	"testing"

	"linkgate/internal/cache"
	"linkgate/internal/domain/models"
	"linkgate/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (*Links, *mocks.MockLinkStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockStorage := mocks.NewMockLinkStorage(ctrl)
	return NewServiceLinks(mockStorage, cache.NewMemoryCache()), mockStorage
}

func TestLinks_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешное создание с первой попытки", func(t *testing.T) {
		service, mockStorage := newService(t)

		mockStorage.EXPECT().
			LinkCreate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, link models.Link) (models.Link, error) {
				assert.Len(t, link.Code, 6)
				assert.Equal(t, "https://example.com", link.Destination)
				assert.Equal(t, int64(1), link.OwnerID)
				assert.False(t, link.CreatedAt.IsZero())
				link.ID = 42
				return link, nil
			})

		created, err := service.Create(ctx, 1, "https://example.com", "promo")
		require.NoError(t, err)
		assert.Equal(t, int64(42), created.ID)
		assert.Equal(t, "promo", created.Label)
	})

	t.Run("Коллизия кода - перегенерация и повтор", func(t *testing.T) {
		service, mockStorage := newService(t)

		var codes []string
		gomock.InOrder(
			mockStorage.EXPECT().
				LinkCreate(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, link models.Link) (models.Link, error) {
					codes = append(codes, link.Code)
					return models.Link{}, models.ErrCodeTaken
				}),
			mockStorage.EXPECT().
				LinkCreate(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, link models.Link) (models.Link, error) {
					codes = append(codes, link.Code)
					return link, nil
				}),
		)

		_, err := service.Create(ctx, 1, "https://example.com", "")
		require.NoError(t, err)
		require.Len(t, codes, 2)
		assert.NotEqual(t, codes[0], codes[1], "кандидат должен генерироваться заново")
	})

	t.Run("Исчерпание попыток", func(t *testing.T) {
		service, mockStorage := newService(t)

		mockStorage.EXPECT().
			LinkCreate(gomock.Any(), gomock.Any()).
			Return(models.Link{}, models.ErrCodeTaken).
			Times(maxAttempts)

		_, err := service.Create(ctx, 1, "https://example.com", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrCodeTaken)
	})

	t.Run("Ошибка хранилища не маскируется под коллизию", func(t *testing.T) {
		service, mockStorage := newService(t)

		mockStorage.EXPECT().
			LinkCreate(gomock.Any(), gomock.Any()).
			Return(models.Link{}, models.ErrUnavailable)

		_, err := service.Create(ctx, 1, "https://example.com", "")
		assert.ErrorIs(t, err, models.ErrUnavailable)
	})

	t.Run("Невалидный destination", func(t *testing.T) {
		service, _ := newService(t)

		for _, destination := range []string{"", "not-a-url", "/relative/path"} {
			_, err := service.Create(ctx, 1, destination, "")
			assert.ErrorIs(t, err, models.ErrInvalidData, "destination %q", destination)
		}
	})

	t.Run("Невалидный владелец", func(t *testing.T) {
		service, _ := newService(t)

		_, err := service.Create(ctx, 0, "https://example.com", "")
		assert.ErrorIs(t, err, models.ErrInvalidData)
	})
}

func TestLinks_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешный резолв", func(t *testing.T) {
		service, mockStorage := newService(t)

		mockStorage.EXPECT().
			LinkGetByCode(gomock.Any(), "ab12cd").
			Return(models.Link{Code: "ab12cd", Destination: "https://example.com"}, nil)

		link, err := service.Resolve(ctx, "ab12cd")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", link.Destination)
	})

	t.Run("Повторный резолв идет из кэша", func(t *testing.T) {
		service, mockStorage := newService(t)

		// Ровно один поход в хранилище на два резолва
		mockStorage.EXPECT().
			LinkGetByCode(gomock.Any(), "ab12cd").
			Return(models.Link{Code: "ab12cd", Destination: "https://example.com"}, nil).
			Times(1)

		_, err := service.Resolve(ctx, "ab12cd")
		require.NoError(t, err)

		link, err := service.Resolve(ctx, "ab12cd")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", link.Destination)
	})

	t.Run("Несуществующий код", func(t *testing.T) {
		service, mockStorage := newService(t)

		mockStorage.EXPECT().
			LinkGetByCode(gomock.Any(), "zzzzzz").
			Return(models.Link{}, models.ErrUnfound)

		_, err := service.Resolve(ctx, "zzzzzz")
		assert.ErrorIs(t, err, models.ErrUnfound)
	})

	t.Run("Пустой код", func(t *testing.T) {
		service, _ := newService(t)

		_, err := service.Resolve(ctx, "")
		assert.ErrorIs(t, err, models.ErrInvalidData)
	})
}

func TestLinks_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Владелец удаляет свою ссылку", func(t *testing.T) {
		service, mockStorage := newService(t)

		gomock.InOrder(
			mockStorage.EXPECT().
				LinkGetByCode(gomock.Any(), "ab12cd").
				Return(models.Link{Code: "ab12cd", OwnerID: 1}, nil),
			mockStorage.EXPECT().
				LinkDelete(gomock.Any(), "ab12cd").
				Return(nil),
		)

		require.NoError(t, service.Delete(ctx, 1, "ab12cd"))
	})

	t.Run("Чужая ссылка - Forbidden, удаления нет", func(t *testing.T) {
		service, mockStorage := newService(t)

		mockStorage.EXPECT().
			LinkGetByCode(gomock.Any(), "ab12cd").
			Return(models.Link{Code: "ab12cd", OwnerID: 1}, nil)

		err := service.Delete(ctx, 2, "ab12cd")
		assert.ErrorIs(t, err, models.ErrForbidden)
	})

	t.Run("Несуществующий код", func(t *testing.T) {
		service, mockStorage := newService(t)

		mockStorage.EXPECT().
			LinkGetByCode(gomock.Any(), "zzzzzz").
			Return(models.Link{}, models.ErrUnfound)

		err := service.Delete(ctx, 1, "zzzzzz")
		assert.ErrorIs(t, err, models.ErrUnfound)
	})

	t.Run("Удаление инвалидирует кэш резолва", func(t *testing.T) {
		service, mockStorage := newService(t)

		gomock.InOrder(
			mockStorage.EXPECT().
				LinkGetByCode(gomock.Any(), "ab12cd").
				Return(models.Link{Code: "ab12cd", Destination: "https://example.com", OwnerID: 1}, nil),
			mockStorage.EXPECT().
				LinkGetByCode(gomock.Any(), "ab12cd").
				Return(models.Link{Code: "ab12cd", OwnerID: 1}, nil),
			mockStorage.EXPECT().
				LinkDelete(gomock.Any(), "ab12cd").
				Return(nil),
			mockStorage.EXPECT().
				LinkGetByCode(gomock.Any(), "ab12cd").
				Return(models.Link{}, models.ErrUnfound),
		)

		_, err := service.Resolve(ctx, "ab12cd")
		require.NoError(t, err)

		require.NoError(t, service.Delete(ctx, 1, "ab12cd"))

		_, err = service.Resolve(ctx, "ab12cd")
		assert.ErrorIs(t, err, models.ErrUnfound, "после удаления кэш не должен отдавать destination")
	})
}

func TestLinks_GetByOwner(t *testing.T) {
	ctx := context.Background()

	t.Run("Ссылки владельца", func(t *testing.T) {
		service, mockStorage := newService(t)

		expected := []models.Link{
			{ID: 1, Code: "aaa111", OwnerID: 7},
			{ID: 2, Code: "bbb222", OwnerID: 7},
		}
		mockStorage.EXPECT().
			LinkGetBatchByOwner(gomock.Any(), int64(7)).
			Return(expected, nil)

		got, err := service.GetByOwner(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("Невалидный владелец", func(t *testing.T) {
		service, _ := newService(t)

		_, err := service.GetByOwner(ctx, -1)
		assert.ErrorIs(t, err, models.ErrInvalidData)
	})
}

func TestLinks_PingStorage(t *testing.T) {
	service, mockStorage := newService(t)

	mockStorage.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

	err := service.PingStorage(context.Background())
	require.Error(t, err)
}
