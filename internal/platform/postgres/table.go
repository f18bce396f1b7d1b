package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/phrazzld/adboard-api/internal/store"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// table is the CRUD engine shared by every Postgres store. Each store supplies
// a mapping (table name, projected columns, scan function, constraint errors)
// and builds its own SET clauses; the engine does the rest.
type table[T any] struct {
	name     string
	entity   string
	columns  []string
	scan     func(rowScanner) (T, error)
	notFound error
	// unique maps a unique constraint name to the entity-specific duplicate error.
	unique map[string]error
}

func (t table[T]) selectList() string {
	return strings.Join(t.columns, ", ")
}

// wrap maps a database error and records the failed operation.
func (t table[T]) wrap(op string, err error) error {
	mapped := MapError(err, t.unique)
	if errors.Is(mapped, store.ErrNotFound) {
		mapped = t.notFound
	}
	return store.NewStoreError(t.entity, op, mapped)
}

func (t table[T]) getOne(ctx context.Context, db store.DBTX, where string, args ...any) (*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s", t.selectList(), t.name, where)
	entity, err := t.scan(db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, t.wrap("get", err)
	}
	return &entity, nil
}

func (t table[T]) getByID(ctx context.Context, db store.DBTX, id int64) (*T, error) {
	return t.getOne(ctx, db, "id = $1", id)
}

// list returns the rows matching where (all rows when empty) ordered by id.
func (t table[T]) list(ctx context.Context, db store.DBTX, where string, args ...any) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", t.selectList(), t.name)
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY id"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, t.wrap("list", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]T, 0)
	for rows.Next() {
		entity, err := t.scan(rows)
		if err != nil {
			return nil, t.wrap("list", err)
		}
		result = append(result, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, t.wrap("list", err)
	}
	return result, nil
}

func (t table[T]) insert(ctx context.Context, db store.DBTX, values *assignments) (*T, error) {
	placeholders := make([]string, len(values.args))
	for i := range values.args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.name, strings.Join(values.columns, ", "), strings.Join(placeholders, ", "), t.selectList())

	entity, err := t.scan(db.QueryRowContext(ctx, query, values.args...))
	if err != nil {
		return nil, t.wrap("create", err)
	}
	return &entity, nil
}

// update applies set to the row with the given id. An empty set leaves the
// row untouched and returns its current state.
func (t table[T]) update(ctx context.Context, db store.DBTX, id int64, set *assignments) (*T, error) {
	if set.empty() {
		entity, err := t.getByID(ctx, db, id)
		if err != nil {
			return nil, t.wrap("update", errors.Unwrap(err))
		}
		return entity, nil
	}

	args := append(append([]any{}, set.args...), id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		t.name, strings.Join(set.clauses(), ", "), len(args), t.selectList())

	entity, err := t.scan(db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, t.wrap("update", err)
	}
	return &entity, nil
}

func (t table[T]) delete(ctx context.Context, db store.DBTX, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", t.name)
	result, err := db.ExecContext(ctx, query, id)
	if err != nil {
		return t.wrap("delete", err)
	}
	if err := CheckRowsAffected(result, t.notFound); err != nil {
		return store.NewStoreError(t.entity, "delete", err)
	}
	return nil
}

// assignments accumulates column/value pairs for INSERT and UPDATE statements.
// Raw expressions (e.g. "updated_at = NOW()") take no argument.
type assignments struct {
	columns []string
	args    []any
	raw     []string
}

func (a *assignments) set(column string, value any) *assignments {
	a.columns = append(a.columns, column)
	a.args = append(a.args, value)
	return a
}

func (a *assignments) expr(clause string) *assignments {
	a.raw = append(a.raw, clause)
	return a
}

func (a *assignments) empty() bool {
	return len(a.columns) == 0 && len(a.raw) == 0
}

func (a *assignments) clauses() []string {
	out := make([]string, 0, len(a.columns)+len(a.raw))
	for i, column := range a.columns {
		out = append(out, fmt.Sprintf("%s = $%d", column, i+1))
	}
	return append(out, a.raw...)
}
