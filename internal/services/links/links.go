package links

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"linkgate/internal/cache"
	"linkgate/internal/domain/models"
	"linkgate/internal/shortcode"
)

//go:generate mockgen -source=links.go -destination=../../mocks/mock_link_storage.go -package=mocks
type LinkStorage interface {
	LinkCreate(ctx context.Context, link models.Link) (models.Link, error)
	LinkGetByCode(ctx context.Context, code string) (models.Link, error)
	LinkGetBatchByOwner(ctx context.Context, ownerID int64) ([]models.Link, error)
	LinkDelete(ctx context.Context, code string) error
	Ping(ctx context.Context) error
}

// Коллизии при 62^6 кодах астрономически редки, поэтому maxAttempts
// исчерпывается только при системной проблеме хранилища.
const maxAttempts = 5

const resolveCacheTTL = 5 * time.Minute

// Links реализует выдачу кодов и резолв code -> destination.
type Links struct {
	storage LinkStorage
	cache   cache.Cache
}

func NewServiceLinks(storage LinkStorage, resolveCache cache.Cache) *Links {
	return &Links{
		storage: storage,
		cache:   resolveCache,
	}
}

// Create выпускает новую ссылку для оператора.
// Кандидат кода генерируется заново на каждую попытку,
// ErrCodeTaken наружу не отдается - только fatal после исчерпания попыток.
func (s *Links) Create(ctx context.Context, ownerID int64, destination, label string) (models.Link, error) {
	if ownerID <= 0 {
		return models.Link{}, models.ErrInvalidData
	}
	if err := validateDestination(destination); err != nil {
		return models.Link{}, err
	}

	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		candidate := models.Link{
			Code:        shortcode.Generate(),
			Destination: destination,
			OwnerID:     ownerID,
			Label:       label,
			CreatedAt:   time.Now().UTC(),
		}

		created, err := s.storage.LinkCreate(ctx, candidate)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, models.ErrCodeTaken) {
			return models.Link{}, fmt.Errorf("failed to create link: %w", err)
		}
		lastErr = err
	}

	return models.Link{}, fmt.Errorf("failed to allocate unique code after %d attempts: %w", maxAttempts, lastErr)
}

// Resolve возвращает ссылку по коду. Чтение без сайд-эффектов
// (заполнение кэша не в счет).
func (s *Links) Resolve(ctx context.Context, code string) (models.Link, error) {
	if code == "" {
		return models.Link{}, models.ErrInvalidData
	}

	if dest, hit, err := s.cache.Get(ctx, code); err == nil && hit {
		return models.Link{Code: code, Destination: dest}, nil
	}

	link, err := s.storage.LinkGetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return models.Link{}, fmt.Errorf("%w: code %q", models.ErrUnfound, code)
		}
		return models.Link{}, fmt.Errorf("failed to resolve code: %w", err)
	}

	// Ошибка кэша резолв не ломает
	_ = s.cache.Set(ctx, code, link.Destination, resolveCacheTTL)

	return link, nil
}

// GetByOwner возвращает все ссылки оператора в порядке создания.
func (s *Links) GetByOwner(ctx context.Context, ownerID int64) ([]models.Link, error) {
	if ownerID <= 0 {
		return nil, models.ErrInvalidData
	}

	ownerLinks, err := s.storage.LinkGetBatchByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner links: %w", err)
	}

	return ownerLinks, nil
}

// Delete удаляет ссылку после проверки владения.
// Submission записи остаются - история переживает ссылку.
func (s *Links) Delete(ctx context.Context, ownerID int64, code string) error {
	if ownerID <= 0 || code == "" {
		return models.ErrInvalidData
	}

	link, err := s.storage.LinkGetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return err
		}
		return fmt.Errorf("failed to get link: %w", err)
	}

	if link.OwnerID != ownerID {
		return models.ErrForbidden
	}

	if err := s.storage.LinkDelete(ctx, code); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	_ = s.cache.Delete(ctx, code)
	return nil
}

// PingStorage проверяет соединение с хранилищем.
func (s *Links) PingStorage(ctx context.Context) error {
	if err := s.storage.Ping(ctx); err != nil {
		return fmt.Errorf("storage ping failed: %w", err)
	}
	return nil
}

func validateDestination(destination string) error {
	if destination == "" {
		return models.ErrInvalidData
	}

	u, err := url.Parse(destination)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: destination must be an absolute URL", models.ErrInvalidData)
	}
	return nil
}
