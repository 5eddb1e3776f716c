package inmemory

import (
	"context"
	"sort"
	"sync"

	"linkgate/internal/domain/models"
)

// InmemoryStorage держит все три набора записей под одним RWMutex.
// Когда Postgres не сконфигурирован именно эта блокировка - точка,
// где два конкурентных LinkCreate с одинаковым кодом сериализуются.
type InmemoryStorage struct {
	mu             sync.RWMutex
	links          map[string]models.Link // key = code
	submissions    []models.Submission    // append-only, в порядке записи
	operators      map[int64]models.Operator
	lastLinkID     int64
	lastOperatorID int64
}

func NewStorage() *InmemoryStorage {
	return &InmemoryStorage{
		links:     make(map[string]models.Link),
		operators: make(map[int64]models.Operator),
	}
}

func (m *InmemoryStorage) LinkCreate(ctx context.Context, link models.Link) (models.Link, error) {
	if err := ctx.Err(); err != nil {
		return models.Link{}, err
	}

	if link.Code == "" || link.Destination == "" {
		return models.Link{}, models.ErrInvalidData
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.links[link.Code]; exists {
		return models.Link{}, models.ErrCodeTaken
	}

	m.lastLinkID++
	link.ID = m.lastLinkID
	m.links[link.Code] = link

	return link, nil
}

func (m *InmemoryStorage) LinkGetByCode(ctx context.Context, code string) (models.Link, error) {
	if err := ctx.Err(); err != nil {
		return models.Link{}, err
	}

	if code == "" {
		return models.Link{}, models.ErrInvalidData
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	link, exists := m.links[code]
	if !exists {
		return models.Link{}, models.ErrUnfound
	}
	return link, nil
}

func (m *InmemoryStorage) LinkGetBatchByOwner(ctx context.Context, ownerID int64) ([]models.Link, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var ownerLinks []models.Link
	for _, link := range m.links {
		if link.OwnerID == ownerID {
			ownerLinks = append(ownerLinks, link)
		}
	}

	// Порядок создания, как вернул бы ORDER BY id
	sort.Slice(ownerLinks, func(i, j int) bool {
		return ownerLinks[i].ID < ownerLinks[j].ID
	})

	return ownerLinks, nil
}

// LinkDelete удаляет только саму ссылку - submissions записанные
// через нее остаются как есть.
func (m *InmemoryStorage) LinkDelete(ctx context.Context, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.links[code]; !exists {
		return models.ErrUnfound
	}

	delete(m.links, code)
	return nil
}

func (m *InmemoryStorage) SubmissionCreate(ctx context.Context, sub models.Submission) (models.Submission, error) {
	if err := ctx.Err(); err != nil {
		return models.Submission{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Referential check на момент записи; ссылку можно удалить потом
	if _, exists := m.links[sub.Code]; !exists {
		return models.Submission{}, models.ErrInvalidCode
	}

	sub.Fields = append([]models.Field(nil), sub.Fields...)
	m.submissions = append(m.submissions, sub)

	return sub, nil
}

func (m *InmemoryStorage) SubmissionGetBatchByCodes(ctx context.Context, codes []string) ([]models.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		wanted[code] = struct{}{}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []models.Submission
	for _, sub := range m.submissions {
		if _, ok := wanted[sub.Code]; ok {
			result = append(result, sub)
		}
	}

	// Новые первыми, как в выдаче кабинета
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].RecordedAt.After(result[j].RecordedAt)
	})

	return result, nil
}

func (m *InmemoryStorage) OperatorCreate(ctx context.Context, op models.Operator) (models.Operator, error) {
	if err := ctx.Err(); err != nil {
		return models.Operator{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastOperatorID++
	op.ID = m.lastOperatorID
	m.operators[op.ID] = op

	return op, nil
}

func (m *InmemoryStorage) OperatorGetByID(ctx context.Context, id int64) (models.Operator, error) {
	if err := ctx.Err(); err != nil {
		return models.Operator{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	op, exists := m.operators[id]
	if !exists {
		return models.Operator{}, models.ErrUnfound
	}
	return op, nil
}

func (m *InmemoryStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}
