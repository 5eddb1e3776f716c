package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"linkgate/internal/domain/models"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	storageMaxOpenConnections     = 5
	storageMaxIdleConnections     = 2
	storageConnectionsMaxIdleTime = 2 * time.Minute
	storageConnectionsLifetime    = 30 * time.Minute
	storagePingTimeout            = 5 * time.Second
)

const (
	pgErrCodeUniqueViolation = "23505"
)

type PostgresStorage struct {
	db *sql.DB
}

func NewStorage(ctx context.Context, dsn string) (*PostgresStorage, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	initConnectionPools(db)

	ctxPing, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()

	if err := db.PingContext(ctxPing); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &PostgresStorage{db: db}, nil
}

// NewStorageWithDB оборачивает готовое соединение, используется в тестах.
func NewStorageWithDB(db *sql.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func initConnectionPools(db *sql.DB) {
	db.SetMaxOpenConns(storageMaxOpenConnections)
	db.SetMaxIdleConns(storageMaxIdleConnections)
	db.SetConnMaxIdleTime(storageConnectionsMaxIdleTime)
	db.SetConnMaxLifetime(storageConnectionsLifetime)
}

func createTables(ctx context.Context, db *sql.DB) error {
	// У submissions нет FK на links: история обязана переживать
	// удаление ссылки, проверка существования кода делается при INSERT
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS operators (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS links (
			id BIGSERIAL PRIMARY KEY,
			code VARCHAR(10) UNIQUE NOT NULL,
			destination TEXT NOT NULL,
			owner_id BIGINT NOT NULL,
			label TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_links_owner ON links (owner_id);
		CREATE TABLE IF NOT EXISTS submissions (
			id UUID PRIMARY KEY,
			code VARCHAR(10) NOT NULL,
			fields JSONB NOT NULL,
			recorded_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_submissions_code_recorded ON submissions (code, recorded_at DESC);
	`)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

func (p *PostgresStorage) LinkCreate(ctx context.Context, link models.Link) (models.Link, error) {
	if link.Code == "" || link.Destination == "" {
		return models.Link{}, models.ErrInvalidData
	}

	err := p.db.QueryRowContext(ctx, `
		INSERT INTO links (code, destination, owner_id, label, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		link.Code, link.Destination, link.OwnerID, link.Label, link.CreatedAt,
	).Scan(&link.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return models.Link{}, models.ErrCodeTaken
		}
		return models.Link{}, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}

	return link, nil
}

func (p *PostgresStorage) LinkGetByCode(ctx context.Context, code string) (models.Link, error) {
	if code == "" {
		return models.Link{}, fmt.Errorf("%w: code must not be empty", models.ErrInvalidData)
	}

	var link models.Link
	err := p.db.QueryRowContext(ctx, `
		SELECT id, code, destination, owner_id, label, created_at
		FROM links WHERE code = $1`,
		code,
	).Scan(&link.ID, &link.Code, &link.Destination, &link.OwnerID, &link.Label, &link.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Link{}, models.ErrUnfound
		}
		return models.Link{}, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}

	return link, nil
}

func (p *PostgresStorage) LinkGetBatchByOwner(ctx context.Context, ownerID int64) ([]models.Link, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT id, code, destination, owner_id, label, created_at
		FROM links WHERE owner_id = $1
		ORDER BY id`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}
	defer rows.Close()

	var links []models.Link
	for rows.Next() {
		var link models.Link
		if err := rows.Scan(&link.ID, &link.Code, &link.Destination, &link.OwnerID, &link.Label, &link.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return links, nil
}

func (p *PostgresStorage) LinkDelete(ctx context.Context, code string) error {
	res, err := p.db.ExecContext(ctx, "DELETE FROM links WHERE code = $1", code)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return models.ErrUnfound
	}
	return nil
}

// SubmissionCreate - один INSERT с проверкой существования кода внутри
// самого запроса, поэтому частичная запись невозможна в принципе.
func (p *PostgresStorage) SubmissionCreate(ctx context.Context, sub models.Submission) (models.Submission, error) {
	payload, err := json.Marshal(sub.Fields)
	if err != nil {
		return models.Submission{}, fmt.Errorf("failed to marshal fields: %w", err)
	}

	var id string
	err = p.db.QueryRowContext(ctx, `
		INSERT INTO submissions (id, code, fields, recorded_at)
		SELECT $1, $2, $3, $4
		WHERE EXISTS (SELECT 1 FROM links WHERE code = $2)
		RETURNING id`,
		sub.ID, sub.Code, payload, sub.RecordedAt,
	).Scan(&id)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Submission{}, models.ErrInvalidCode
		}
		return models.Submission{}, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}

	return sub, nil
}

func (p *PostgresStorage) SubmissionGetBatchByCodes(ctx context.Context, codes []string) ([]models.Submission, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	rows, err := p.db.QueryContext(ctx, `
		SELECT id, code, fields, recorded_at
		FROM submissions WHERE code = ANY($1)
		ORDER BY recorded_at DESC`,
		codes,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}
	defer rows.Close()

	var subs []models.Submission
	for rows.Next() {
		var (
			sub     models.Submission
			payload []byte
		)
		if err := rows.Scan(&sub.ID, &sub.Code, &payload, &sub.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		if err := json.Unmarshal(payload, &sub.Fields); err != nil {
			return nil, fmt.Errorf("failed to unmarshal fields: %w", err)
		}
		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return subs, nil
}

func (p *PostgresStorage) OperatorCreate(ctx context.Context, op models.Operator) (models.Operator, error) {
	err := p.db.QueryRowContext(ctx, `
		INSERT INTO operators (name, created_at) VALUES ($1, $2) RETURNING id`,
		op.Name, op.CreatedAt,
	).Scan(&op.ID)
	if err != nil {
		return models.Operator{}, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}
	return op, nil
}

func (p *PostgresStorage) OperatorGetByID(ctx context.Context, id int64) (models.Operator, error) {
	var op models.Operator
	err := p.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM operators WHERE id = $1",
		id,
	).Scan(&op.ID, &op.Name, &op.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Operator{}, models.ErrUnfound
		}
		return models.Operator{}, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}

	return op, nil
}

func (p *PostgresStorage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()
	return p.db.PingContext(ctx)
}

func (p *PostgresStorage) Close() error {
	return p.db.Close()
}
