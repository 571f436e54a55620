package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"pagecraft/internal/domain"
)

const uniqueViolation = "23505"

// Querier is satisfied by pgxpool.Pool and infra.SQLRunner.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PageRepositoryPG implements domain.PageRepository backed by PostgreSQL.
type PageRepositoryPG struct {
	db Querier
}

// NewPageRepository creates a new PageRepositoryPG.
func NewPageRepository(db Querier) *PageRepositoryPG {
	return &PageRepositoryPG{db: db}
}

const pageColumns = `id, user_id, business_name, answers, spec, status, metadata, created_at, updated_at`

// FindOne returns the user's page for businessName or domain.ErrNotFound.
func (r *PageRepositoryPG) FindOne(ctx context.Context, userID, businessName string) (*domain.Page, error) {
	row := r.db.QueryRow(ctx, `-- name: FindPageByBusinessName
SELECT `+pageColumns+`
FROM pages
WHERE user_id = $1 AND business_name = $2
LIMIT 1;
`, userID, businessName)
	return scanPage(row)
}

// Create inserts the page, assigning ID and timestamps. A concurrent insert
// of the same business name surfaces as domain.ErrDuplicateBusinessName.
func (r *PageRepositoryPG) Create(ctx context.Context, page *domain.Page) error {
	if page.ID == "" {
		page.ID = uuid.NewString()
	}
	answers, err := json.Marshal(page.Answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	spec, err := json.Marshal(page.Spec)
	if err != nil {
		return fmt.Errorf("encode spec: %w", err)
	}
	metadata, err := json.Marshal(page.Metadata)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}

	row := r.db.QueryRow(ctx, `-- name: CreatePage
INSERT INTO pages (id, user_id, business_name, answers, spec, status, metadata)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING created_at, updated_at;
`, page.ID, page.UserID, page.BusinessName, answers, spec, string(page.Status), metadata)
	if err := row.Scan(&page.CreatedAt, &page.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicateBusinessName
		}
		return err
	}
	return nil
}

// GetByID fetches a page by UUID.
func (r *PageRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Page, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	row := r.db.QueryRow(ctx, `-- name: GetPage
SELECT `+pageColumns+` FROM pages WHERE id = $1`, id)
	return scanPage(row)
}

// ListByUser returns the user's pages, newest first.
func (r *PageRepositoryPG) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Page, error) {
	rows, err := r.db.Query(ctx, `-- name: ListPagesByUser
SELECT `+pageColumns+`
FROM pages
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2;
`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Page
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *page)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanPage(row pgx.Row) (*domain.Page, error) {
	var (
		p                       domain.Page
		status                  string
		answers, spec, metadata []byte
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.BusinessName, &answers, &spec, &status, &metadata, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	p.Status = domain.PageStatus(status)
	if err := json.Unmarshal(answers, &p.Answers); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	if len(spec) > 0 {
		if err := json.Unmarshal(spec, &p.Spec); err != nil {
			return nil, fmt.Errorf("decode spec: %w", err)
		}
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &p.Metadata); err != nil {
			return nil, fmt.Errorf("decode metadata: %w", err)
		}
	}
	return &p, nil
}
