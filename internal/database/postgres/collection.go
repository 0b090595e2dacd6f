// Package postgres adapts the document-store boundary to Postgres. Each
// collection is a table of (id TEXT PRIMARY KEY, doc JSONB NOT NULL) rows;
// documents are marshaled JSON, queried through JSONB operators.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/syslocale/domainpbn/internal/database"
)

// Collection gives typed access to one document table. T is the document
// type stored in the doc column; the id column duplicates the document's id
// field for keyed access.
type Collection[T any] struct {
	db    *sqlx.DB
	table string
}

// NewCollection returns a collection bound to the given table. The table
// name is interpolated into SQL and must be a compile-time constant, never
// request input.
func NewCollection[T any](db *sqlx.DB, table string) *Collection[T] {
	return &Collection[T]{
		db:    db,
		table: table,
	}
}

// Insert stores a new document under the given id.
func (c *Collection[T]) Insert(ctx context.Context, id string, doc *T) error {
	const op = "database.postgres.Collection.Insert"

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%s: failed to marshal document: %w", op, err)
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2)`, c.table)

	if _, err := c.db.ExecContext(ctx, query, id, raw); err != nil {
		return fmt.Errorf("%s: failed to insert document: %w", op, err)
	}

	return nil
}

// InsertMany stores a batch of documents in one statement, so the batch is
// applied atomically. It returns the number of inserted documents.
func (c *Collection[T]) InsertMany(ctx context.Context, ids []string, docs []*T) (int64, error) {
	const op = "database.postgres.Collection.InsertMany"

	if len(ids) != len(docs) {
		return 0, fmt.Errorf("%s: ids and docs length mismatch", op)
	}
	if len(docs) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `INSERT INTO %s (id, doc) VALUES `, c.table)

	args := make([]any, 0, len(docs)*2)
	for i, doc := range docs {
		raw, err := json.Marshal(doc)
		if err != nil {
			return 0, fmt.Errorf("%s: failed to marshal document: %w", op, err)
		}

		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($%d, $%d)", len(args)+1, len(args)+2)
		args = append(args, ids[i], raw)
	}

	res, err := c.db.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to insert documents: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to get affected rows: %w", op, err)
	}

	return n, nil
}

// FindByID retrieves the document stored under the given id.
func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	const op = "database.postgres.Collection.FindByID"

	query := fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, c.table)

	var raw []byte
	if err := c.db.GetContext(ctx, &raw, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, database.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get document: %w", op, err)
	}

	return c.unmarshal(op, raw)
}

// FindOne retrieves the first document matching the query.
func (c *Collection[T]) FindOne(ctx context.Context, q database.Query) (*T, error) {
	const op = "database.postgres.Collection.FindOne"

	q.Limit = 1
	query, args := c.buildSelect(q)

	var raw []byte
	if err := c.db.GetContext(ctx, &raw, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, database.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get document: %w", op, err)
	}

	return c.unmarshal(op, raw)
}

// Find retrieves every document matching the query, honoring its sort,
// skip and limit.
func (c *Collection[T]) Find(ctx context.Context, q database.Query) ([]*T, error) {
	const op = "database.postgres.Collection.Find"

	query, args := c.buildSelect(q)

	var rows [][]byte
	if err := c.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to select documents: %w", op, err)
	}

	docs := make([]*T, 0, len(rows))
	for _, raw := range rows {
		doc, err := c.unmarshal(op, raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// Replace overwrites the whole document stored under the given id and
// returns the stored state read back from the database.
func (c *Collection[T]) Replace(ctx context.Context, id string, doc *T) (*T, error) {
	const op = "database.postgres.Collection.Replace"

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to marshal document: %w", op, err)
	}

	query := fmt.Sprintf(`UPDATE %s SET doc = $2 WHERE id = $1 RETURNING doc`, c.table)

	var stored []byte
	if err := c.db.GetContext(ctx, &stored, query, id, raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, database.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: failed to replace document: %w", op, err)
	}

	return c.unmarshal(op, stored)
}

// Upsert stores the document under the given id, replacing any previous
// state, and returns the stored state.
func (c *Collection[T]) Upsert(ctx context.Context, id string, doc *T) (*T, error) {
	const op = "database.postgres.Collection.Upsert"

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to marshal document: %w", op, err)
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc
		RETURNING doc`, c.table)

	var stored []byte
	if err := c.db.GetContext(ctx, &stored, query, id, raw); err != nil {
		return nil, fmt.Errorf("%s: failed to upsert document: %w", op, err)
	}

	return c.unmarshal(op, stored)
}

// Delete removes the document stored under the given id. Deleting an
// absent id reports database.ErrNotFound.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	const op = "database.postgres.Collection.Delete"

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, c.table)

	res, err := c.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: failed to delete document: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get affected rows: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, database.ErrNotFound)
	}

	return nil
}

func (c *Collection[T]) unmarshal(op string, raw []byte) (*T, error) {
	doc := new(T)
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("%s: failed to unmarshal document: %w", op, err)
	}

	return doc, nil
}

// buildSelect renders a database.Query into SQL over the JSONB doc column.
// Field names inside conditions come from service-layer constants, so they
// are safe to interpolate.
func (c *Collection[T]) buildSelect(q database.Query) (string, []any) {
	var sb strings.Builder
	fmt.Fprintf(&sb, `SELECT doc FROM %s`, c.table)

	var (
		clauses []string
		args    []any
	)

	for _, cond := range q.Conditions {
		clause, arg := renderCondition(cond, len(args)+1)
		clauses = append(clauses, clause)
		args = append(args, arg)
	}

	if len(q.Any) > 0 {
		var anyClauses []string
		for _, cond := range q.Any {
			clause, arg := renderCondition(cond, len(args)+1)
			anyClauses = append(anyClauses, clause)
			args = append(args, arg)
		}
		clauses = append(clauses, "("+strings.Join(anyClauses, " OR ")+")")
	}

	if len(clauses) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(clauses, " AND "))
	}

	if q.Sort != nil {
		field := fmt.Sprintf("doc->>'%s'", q.Sort.Field)
		if q.Sort.Numeric {
			field = "(" + field + ")::numeric"
		}

		dir := "ASC"
		if q.Sort.Desc {
			dir = "DESC"
		}

		fmt.Fprintf(&sb, " ORDER BY %s %s", field, dir)
	}

	if q.Skip > 0 {
		fmt.Fprintf(&sb, " OFFSET %d", q.Skip)
	}
	if q.Limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", q.Limit)
	}

	return sb.String(), args
}

func renderCondition(cond database.Condition, placeholder int) (string, any) {
	switch cond.Op {
	case database.OpContains:
		return fmt.Sprintf(`doc->>'%s' ~* $%d`, cond.Field, placeholder), cond.Value
	case database.OpGte:
		return fmt.Sprintf(`(doc->>'%s')::numeric >= $%d`, cond.Field, placeholder), cond.Value
	case database.OpLte:
		return fmt.Sprintf(`(doc->>'%s')::numeric <= $%d`, cond.Field, placeholder), cond.Value
	default:
		return fmt.Sprintf(`doc->>'%s' = $%d`, cond.Field, placeholder), fmt.Sprint(cond.Value)
	}
}
