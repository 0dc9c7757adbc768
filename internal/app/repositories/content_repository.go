package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hillcrest/college-backend/internal/app/models"
	"github.com/hillcrest/college-backend/internal/pkg/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContentRepository handles database operations for one content resource.
// The SQL is built once from the resource descriptor; rows are scanned into
// the resource's model by column name. Instantiated per resource instead of
// duplicating near-identical repositories nine times.
type ContentRepository[T any] struct {
	db         *pgxpool.Pool
	desc       models.Descriptor
	selectCols string
}

// NewContentRepository creates a repository for the described resource
func NewContentRepository[T any](db *pgxpool.Pool, desc models.Descriptor) *ContentRepository[T] {
	cols := make([]string, 0, len(desc.Columns)+3)
	cols = append(cols, "id")
	cols = append(cols, desc.Columns...)
	cols = append(cols, "created_at", "updated_at")

	return &ContentRepository[T]{
		db:         db,
		desc:       desc,
		selectCols: strings.Join(cols, ", "),
	}
}

// Descriptor returns the resource descriptor the repository was built from
func (r *ContentRepository[T]) Descriptor() models.Descriptor {
	return r.desc
}

// List retrieves all records in persisted insertion order
func (r *ContentRepository[T]) List(ctx context.Context) ([]*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id`, r.selectCols, r.desc.Table)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing %s records: %w", r.desc.Name, err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("error scanning %s records: %w", r.desc.Name, err)
	}

	return records, nil
}

// GetByID retrieves a record by ID
func (r *ContentRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, r.selectCols, r.desc.Table)

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving %s: %w", r.desc.Name, err)
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("%s not found", r.desc.Name))
		}
		return nil, fmt.Errorf("error scanning %s: %w", r.desc.Name, err)
	}

	return record, nil
}

// Insert persists a new record from the supplied column values and returns
// the stored row. Only descriptor columns present in fields are written.
func (r *ContentRepository[T]) Insert(ctx context.Context, fields map[string]any) (*T, error) {
	cols := make([]string, 0, len(fields))
	placeholders := make([]string, 0, len(fields))
	for _, c := range r.desc.Columns {
		if _, ok := fields[c]; ok {
			cols = append(cols, c)
			placeholders = append(placeholders, "@"+c)
		}
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		r.desc.Table,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
		r.selectCols,
	)

	rows, err := r.db.Query(ctx, query, pgx.NamedArgs(fields))
	if err != nil {
		return nil, fmt.Errorf("error creating %s: %w", r.desc.Name, err)
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("error scanning created %s: %w", r.desc.Name, err)
	}

	return record, nil
}

// Update applies the supplied column values to an existing record and
// returns the stored row. Absent columns are left untouched.
func (r *ContentRepository[T]) Update(ctx context.Context, id int64, fields map[string]any) (*T, error) {
	sets := make([]string, 0, len(fields)+1)
	args := pgx.NamedArgs{}
	for _, c := range r.desc.Columns {
		if v, ok := fields[c]; ok {
			sets = append(sets, c+" = @"+c)
			args[c] = v
		}
	}
	sets = append(sets, "updated_at = now()")
	args["id"] = id

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = @id RETURNING %s`,
		r.desc.Table,
		strings.Join(sets, ", "),
		r.selectCols,
	)

	rows, err := r.db.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error updating %s: %w", r.desc.Name, err)
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("%s not found", r.desc.Name))
		}
		return nil, fmt.Errorf("error scanning updated %s: %w", r.desc.Name, err)
	}

	return record, nil
}

// Delete removes a record by ID
func (r *ContentRepository[T]) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.desc.Table)

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting %s: %w", r.desc.Name, err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("%s not found", r.desc.Name))
	}

	return nil
}
