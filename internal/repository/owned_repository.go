package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// OwnedTable describes how one owned resource kind is laid out in its table.
// Every table has id, created_by and created_at next to the data columns.
type OwnedTable[T any, P any] struct {
	Name    string
	Columns []string
	// Values returns insert arguments aligned with Columns.
	Values func(rec *T) []any
	// Patch returns update arguments aligned with Columns; a nil argument keeps the stored value.
	Patch func(patch P) []any
	// Scan reads id, Columns..., created_by, created_at.
	Scan func(row rowScanner) (*T, error)
}

// OwnedRepository persists records that are only reachable by their creator.
// Every read and write carries the owner in the same statement.
type OwnedRepository[T any, P any] interface {
	Create(ctx context.Context, ownerID int64, rec *T) (*T, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]T, error)
	GetOwned(ctx context.Context, id, ownerID int64) (*T, error)
	UpdateOwned(ctx context.Context, id, ownerID int64, patch P) (*T, error)
	DeleteOwned(ctx context.Context, id, ownerID int64) error
}

type ownedRepository[T any, P any] struct {
	db    DBTX
	table OwnedTable[T, P]

	insertSQL string
	listSQL   string
	getSQL    string
	updateSQL string
	deleteSQL string
}

// NewOwnedRepository builds the statements for table once and returns a repository over db.
func NewOwnedRepository[T any, P any](db DBTX, table OwnedTable[T, P]) OwnedRepository[T, P] {
	n := len(table.Columns)
	returning := "id, " + strings.Join(table.Columns, ", ") + ", created_by, created_at"

	insertCols := append(append([]string{}, table.Columns...), "created_by")
	sets := make([]string, 0, n)
	for i, col := range table.Columns {
		sets = append(sets, fmt.Sprintf("%s = COALESCE($%d, %s)", col, i+1, col))
	}

	return &ownedRepository[T, P]{
		db:    db,
		table: table,
		insertSQL: fmt.Sprintf(`
        INSERT INTO %s (%s)
        VALUES (%s)
        RETURNING %s`, table.Name, strings.Join(insertCols, ", "), placeholders(1, n+1), returning),
		listSQL: fmt.Sprintf(`
        SELECT %s
        FROM %s WHERE created_by=$1
        ORDER BY id`, returning, table.Name),
		getSQL: fmt.Sprintf(`
        SELECT %s
        FROM %s WHERE id=$1 AND created_by=$2`, returning, table.Name),
		updateSQL: fmt.Sprintf(`
        UPDATE %s SET %s
        WHERE id=$%d AND created_by=$%d
        RETURNING %s`, table.Name, strings.Join(sets, ", "), n+1, n+2, returning),
		deleteSQL: fmt.Sprintf(`
        DELETE FROM %s WHERE id=$1 AND created_by=$2`, table.Name),
	}
}

func (r *ownedRepository[T, P]) Create(ctx context.Context, ownerID int64, rec *T) (*T, error) {
	args := append(r.table.Values(rec), ownerID)
	return r.table.Scan(r.db.QueryRowContext(ctx, r.insertSQL, args...))
}

func (r *ownedRepository[T, P]) ListByOwner(ctx context.Context, ownerID int64) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, r.listSQL, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		rec, err := r.table.Scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *rec)
	}
	return result, rows.Err()
}

func (r *ownedRepository[T, P]) GetOwned(ctx context.Context, id, ownerID int64) (*T, error) {
	return r.table.Scan(r.db.QueryRowContext(ctx, r.getSQL, id, ownerID))
}

// UpdateOwned merges patch into the row in one statement; sql.ErrNoRows when
// the id does not exist or belongs to another owner.
func (r *ownedRepository[T, P]) UpdateOwned(ctx context.Context, id, ownerID int64, patch P) (*T, error) {
	args := append(r.table.Patch(patch), id, ownerID)
	return r.table.Scan(r.db.QueryRowContext(ctx, r.updateSQL, args...))
}

// DeleteOwned returns sql.ErrNoRows when nothing was removed.
func (r *ownedRepository[T, P]) DeleteOwned(ctx context.Context, id, ownerID int64) error {
	res, err := r.db.ExecContext(ctx, r.deleteSQL, id, ownerID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func placeholders(from, to int) string {
	parts := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		parts = append(parts, fmt.Sprintf("$%d", i))
	}
	return strings.Join(parts, ", ")
}
