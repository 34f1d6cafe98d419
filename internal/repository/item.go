package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/deppfellow/bff-service/internal/database"
	"github.com/deppfellow/bff-service/internal/model"
	pkgerrors "github.com/pkg/errors"
)

const itemColumns = `id, title, description, owner_id`

type ItemRepository struct {
	db database.DBTX
}

func NewItemRepository(db database.DBTX) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, pkgerrors.Wrapf(err, "failed to get item %d", id)
	}

	return item, nil
}

// List returns up to limit items after skipping skip, in id order.
// The result is never nil.
func (r *ItemRepository) List(ctx context.Context, skip, limit int) ([]model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY id OFFSET $1 LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, skip, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to list items")
	}
	defer rows.Close()

	items := make([]model.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "failed to scan item")
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to iterate items")
	}

	return items, nil
}

// Create inserts item and returns the stored row with its id. A missing
// owner surfaces as the driver's foreign key violation.
func (r *ItemRepository) Create(ctx context.Context, item *model.Item) (*model.Item, error) {
	query := `
		INSERT INTO items (title, description, owner_id)
		VALUES ($1, $2, $3)
		RETURNING ` + itemColumns

	created, err := scanItem(r.db.QueryRowContext(ctx, query, item.Title, item.Description, item.OwnerID))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to create item")
	}

	return created, nil
}

func scanItem(row rowScanner) (*model.Item, error) {
	var (
		item        model.Item
		description sql.NullString
	)
	if err := row.Scan(&item.ID, &item.Title, &description, &item.OwnerID); err != nil {
		return nil, err
	}
	if description.Valid {
		item.Description = &description.String
	}
	return &item, nil
}
