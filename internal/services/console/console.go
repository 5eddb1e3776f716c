package console

import (
	"context"
	"fmt"

	"linkgate/internal/domain/models"
)

//go:generate mockgen -source=console.go -destination=../../mocks/mock_console_storage.go -package=mocks
type ConsoleStorage interface {
	LinkGetBatchByOwner(ctx context.Context, ownerID int64) ([]models.Link, error)
	// SubmissionGetBatchByCodes возвращает записи по множеству кодов,
	// отсортированные по времени захвата, новые первыми.
	SubmissionGetBatchByCodes(ctx context.Context, codes []string) ([]models.Submission, error)
}

// Console - запросный слой кабинета оператора.
// Единственная точка где проверяется граница между операторами.
type Console struct {
	storage ConsoleStorage
}

func NewConsole(storage ConsoleStorage) *Console {
	return &Console{storage: storage}
}

// ListSubmissions возвращает записи по кодам оператора, новые первыми.
//
// codeFilter != "" сужает выдачу до одного кода, но только если код
// принадлежит оператору - иначе ErrForbidden, даже если кода вообще
// не существует. Это единственный checkpoint изоляции: дальше вниз
// уходит уже только множество собственных кодов.
func (c *Console) ListSubmissions(ctx context.Context, ownerID int64, codeFilter string) ([]models.SubmissionView, error) {
	if ownerID <= 0 {
		return nil, models.ErrInvalidData
	}

	ownerLinks, err := c.storage.LinkGetBatchByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner links: %w", err)
	}

	labelByCode := make(map[string]string, len(ownerLinks))
	codes := make([]string, 0, len(ownerLinks))
	for _, link := range ownerLinks {
		labelByCode[link.Code] = link.Label
		codes = append(codes, link.Code)
	}

	if codeFilter != "" {
		if _, owned := labelByCode[codeFilter]; !owned {
			return nil, fmt.Errorf("%w: code %q", models.ErrForbidden, codeFilter)
		}
		codes = []string{codeFilter}
	}

	if len(codes) == 0 {
		return []models.SubmissionView{}, nil
	}

	subs, err := c.storage.SubmissionGetBatchByCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to get submissions: %w", err)
	}

	views := make([]models.SubmissionView, 0, len(subs))
	for _, sub := range subs {
		view := models.SubmissionView{Submission: sub}
		// Ссылка могла исчезнуть между двумя запросами - тогда label отсутствует
		if label, ok := labelByCode[sub.Code]; ok {
			view.LinkLabel = &label
		}
		views = append(views, view)
	}

	return views, nil
}
