package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagecraft/internal/domain"
	"pagecraft/internal/domain/specjson/specjsontest"
)

type simpleRow struct {
	scan func(dest ...any) error
}

func (r simpleRow) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

type testRows struct {
	rows [][]any
	idx  int
	err  error
}

func (r *testRows) Close()                                       {}
func (r *testRows) Err() error                                   { return r.err }
func (r *testRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *testRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *testRows) Conn() *pgx.Conn                              { return nil }
func (r *testRows) RawValues() [][]byte                          { return nil }

func (r *testRows) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}

func (r *testRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *testRows) Scan(dest ...any) error {
	return assign(r.rows[r.idx-1], dest)
}

func assign(values, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values for %d targets", len(values), len(dest))
	}
	for i, v := range values {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *[]byte:
			*d = v.([]byte)
		case *time.Time:
			*d = v.(time.Time)
		default:
			return fmt.Errorf("scan: unsupported target %T", dest[i])
		}
	}
	return nil
}

type call struct {
	sql  string
	args []any
}

type fakeDB struct {
	calls []call
	row   pgx.Row
	rows  pgx.Rows
	err   error
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, call{sql, args})
	return pgconn.CommandTag{}, f.err
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.calls = append(f.calls, call{sql, args})
	return f.rows, f.err
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.calls = append(f.calls, call{sql, args})
	return f.row
}

var fixedTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func pageRow(t *testing.T, id, userID, name string) []any {
	t.Helper()
	answers, err := json.Marshal(domain.WizardAnswers{BusinessName: name, PrimaryColor: "#2563eb"})
	require.NoError(t, err)
	spec, err := json.Marshal(specjsontest.Valid())
	require.NoError(t, err)
	return []any{id, userID, name, answers, spec, "published", []byte(`{"provider":"openai","attempts":2,"repaired":true}`), fixedTime, fixedTime}
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	db := &fakeDB{row: simpleRow{scan: func(dest ...any) error {
		return assign([]any{fixedTime, fixedTime}, dest)
	}}}
	repo := NewPageRepository(db)

	page := &domain.Page{
		UserID:       "user-1",
		BusinessName: "Acme",
		Spec:         specjsontest.Valid(),
		Status:       domain.PageStatusPublished,
		Metadata:     domain.PageMetadata{Provider: "openai", Attempts: 1},
	}
	require.NoError(t, repo.Create(context.Background(), page))
	assert.NotEmpty(t, page.ID)
	assert.Equal(t, fixedTime, page.CreatedAt)

	require.Len(t, db.calls, 1)
	args := db.calls[0].args
	assert.Equal(t, page.ID, args[0])
	assert.Equal(t, "published", args[5])
	assert.JSONEq(t, `{"provider":"openai","attempts":1,"repaired":false}`, string(args[6].([]byte)))
}

func TestCreateMapsUniqueViolation(t *testing.T) {
	db := &fakeDB{row: simpleRow{scan: func(dest ...any) error {
		return &pgconn.PgError{Code: "23505"}
	}}}
	err := NewPageRepository(db).Create(context.Background(), &domain.Page{UserID: "u", BusinessName: "Acme"})
	assert.ErrorIs(t, err, domain.ErrDuplicateBusinessName)
}

func TestFindOneNotFound(t *testing.T) {
	db := &fakeDB{row: simpleRow{}}
	_, err := NewPageRepository(db).FindOne(context.Background(), "user-1", "Acme")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, []any{"user-1", "Acme"}, db.calls[0].args)
}

func TestGetByIDDecodesJSONColumns(t *testing.T) {
	id := "7f1c2a8e-3b9d-4c55-9a51-0f3e8d2b6c11"
	row := pageRow(t, id, "user-1", "Acme")
	db := &fakeDB{row: simpleRow{scan: func(dest ...any) error { return assign(row, dest) }}}

	page, err := NewPageRepository(db).GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Acme", page.Answers.BusinessName)
	assert.Equal(t, domain.PageStatusPublished, page.Status)
	assert.Equal(t, domain.PageMetadata{Provider: "openai", Attempts: 2, Repaired: true}, page.Metadata)
	require.NotNil(t, page.Spec)
	assert.Len(t, page.Spec.Stats, 4)
}

func TestGetByIDRejectsMalformedID(t *testing.T) {
	db := &fakeDB{}
	_, err := NewPageRepository(db).GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, db.calls)
}

func TestListByUser(t *testing.T) {
	db := &fakeDB{rows: &testRows{rows: [][]any{
		pageRow(t, "p2", "user-1", "Beta"),
		pageRow(t, "p1", "user-1", "Acme"),
	}}}
	pages, err := NewPageRepository(db).ListByUser(context.Background(), "user-1", 20)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "p2", pages[0].ID)
	assert.Equal(t, []any{"user-1", 20}, db.calls[0].args)
}

func TestListByUserPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewPageRepository(&fakeDB{err: boom}).ListByUser(context.Background(), "user-1", 20)
	assert.ErrorIs(t, err, boom)

	_, err = NewPageRepository(&fakeDB{rows: &testRows{err: boom}}).ListByUser(context.Background(), "user-1", 20)
	assert.ErrorIs(t, err, boom)
}
