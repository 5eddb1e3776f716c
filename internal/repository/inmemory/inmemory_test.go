package inmemory

import (
	"context"
	"sync"
	"testing"
	"time"

	"linkgate/internal/domain/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLink(code string, ownerID int64) models.Link {
	return models.Link{
		Code:        code,
		Destination: "https://example.com",
		OwnerID:     ownerID,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestInmemoryStorage_LinkCreate(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	created, err := storage.LinkCreate(ctx, testLink("ab12cd", 1))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	// Тот же код повторно - коллизия, даже с другим destination
	dup := testLink("ab12cd", 2)
	dup.Destination = "https://other.com"
	_, err = storage.LinkCreate(ctx, dup)
	assert.ErrorIs(t, err, models.ErrCodeTaken)

	got, err := storage.LinkGetByCode(ctx, "ab12cd")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got.Destination)
	assert.Equal(t, int64(1), got.OwnerID)
}

func TestInmemoryStorage_LinkCreate_Concurrent(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	const workers = 32

	var (
		wg        sync.WaitGroup
		successes int64
		mu        sync.Mutex
	)

	// Все воркеры ломятся с одним и тем же кандидатом
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(ownerID int64) {
			defer wg.Done()
			_, err := storage.LinkCreate(ctx, testLink("race99", ownerID))
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}(int64(i + 1))
	}
	wg.Wait()

	assert.Equal(t, int64(1), successes, "ровно один create с данным кодом должен победить")
}

func TestInmemoryStorage_LinkDelete(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	_, err := storage.LinkCreate(ctx, testLink("ab12cd", 1))
	require.NoError(t, err)

	require.NoError(t, storage.LinkDelete(ctx, "ab12cd"))

	_, err = storage.LinkGetByCode(ctx, "ab12cd")
	assert.ErrorIs(t, err, models.ErrUnfound)

	assert.ErrorIs(t, storage.LinkDelete(ctx, "ab12cd"), models.ErrUnfound)
}

func TestInmemoryStorage_LinkGetBatchByOwner(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	for _, code := range []string{"aaa111", "bbb222", "ccc333"} {
		_, err := storage.LinkCreate(ctx, testLink(code, 1))
		require.NoError(t, err)
	}
	_, err := storage.LinkCreate(ctx, testLink("ddd444", 2))
	require.NoError(t, err)

	links, err := storage.LinkGetBatchByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, links, 3)

	// Порядок создания
	assert.Equal(t, "aaa111", links[0].Code)
	assert.Equal(t, "bbb222", links[1].Code)
	assert.Equal(t, "ccc333", links[2].Code)
}

func TestInmemoryStorage_SubmissionCreate(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	_, err := storage.LinkCreate(ctx, testLink("ab12cd", 1))
	require.NoError(t, err)

	sub := models.Submission{
		ID:         uuid.New(),
		Code:       "ab12cd",
		Fields:     []models.Field{{Name: "username", Value: "bob"}, {Name: "password", Value: "x"}},
		RecordedAt: time.Now().UTC(),
	}
	created, err := storage.SubmissionCreate(ctx, sub)
	require.NoError(t, err)
	assert.Equal(t, sub.ID, created.ID)

	// Код без ссылки - отказ без записи
	orphan := sub
	orphan.ID = uuid.New()
	orphan.Code = "zzzzzz"
	_, err = storage.SubmissionCreate(ctx, orphan)
	assert.ErrorIs(t, err, models.ErrInvalidCode)

	subs, err := storage.SubmissionGetBatchByCodes(ctx, []string{"ab12cd", "zzzzzz"})
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestInmemoryStorage_SubmissionsSurviveLinkDelete(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	_, err := storage.LinkCreate(ctx, testLink("ab12cd", 1))
	require.NoError(t, err)

	sub := models.Submission{
		ID:         uuid.New(),
		Code:       "ab12cd",
		Fields:     []models.Field{{Name: "email", Value: "bob@example.com"}},
		RecordedAt: time.Now().UTC(),
	}
	_, err = storage.SubmissionCreate(ctx, sub)
	require.NoError(t, err)

	require.NoError(t, storage.LinkDelete(ctx, "ab12cd"))

	subs, err := storage.SubmissionGetBatchByCodes(ctx, []string{"ab12cd"})
	require.NoError(t, err)
	require.Len(t, subs, 1, "история переживает удаление ссылки")
	assert.Equal(t, sub.ID, subs[0].ID)
}

func TestInmemoryStorage_SubmissionOrdering(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	_, err := storage.LinkCreate(ctx, testLink("ab12cd", 1))
	require.NoError(t, err)

	base := time.Now().UTC()
	for i := 0; i < 3; i++ {
		_, err := storage.SubmissionCreate(ctx, models.Submission{
			ID:         uuid.New(),
			Code:       "ab12cd",
			Fields:     []models.Field{{Name: "n", Value: "v"}},
			RecordedAt: base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	subs, err := storage.SubmissionGetBatchByCodes(ctx, []string{"ab12cd"})
	require.NoError(t, err)
	require.Len(t, subs, 3)

	for i := 1; i < len(subs); i++ {
		assert.True(t, !subs[i-1].RecordedAt.Before(subs[i].RecordedAt),
			"выдача должна идти от новых к старым")
	}
}

func TestInmemoryStorage_Operators(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	first, err := storage.OperatorCreate(ctx, models.Operator{CreatedAt: time.Now().UTC()})
	require.NoError(t, err)
	second, err := storage.OperatorCreate(ctx, models.Operator{CreatedAt: time.Now().UTC()})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	got, err := storage.OperatorGetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	_, err = storage.OperatorGetByID(ctx, 999)
	assert.ErrorIs(t, err, models.ErrUnfound)
}

func TestInmemoryStorage_ContextCancelled(t *testing.T) {
	storage := NewStorage()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.LinkCreate(ctx, testLink("ab12cd", 1))
	assert.Error(t, err)
}
