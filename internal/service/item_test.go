package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/deppfellow/bff-service/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemService_GetItem(t *testing.T) {
	svc := newTestItemService(&fakeItemRepo{items: []model.Item{{ID: 1, Title: "book", OwnerID: 1}}})

	item, err := svc.GetItem(context.Background(), nil, 1)
	require.NoError(t, err)
	assert.Equal(t, "book", item.Title)

	_, err = svc.GetItem(context.Background(), nil, 9)
	requireHTTPError(t, err, http.StatusNotFound, "Item not found")
}

func TestItemService_ListItems_Empty(t *testing.T) {
	svc := newTestItemService(&fakeItemRepo{})

	items, err := svc.ListItems(context.Background(), nil, 0, 20)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestItemService_CreateItem(t *testing.T) {
	repo := &fakeItemRepo{}
	svc := newTestItemService(repo)

	desc := "hardcover"
	item, err := svc.CreateItem(context.Background(), nil, &model.CreateItemPayload{
		Title:       "book",
		Description: &desc,
		OwnerID:     3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.ID)
	assert.Equal(t, int64(3), item.OwnerID)
	assert.Equal(t, "hardcover", *item.Description)
}

func TestItemService_CreateItem_UnknownOwnerPassesThrough(t *testing.T) {
	fkErr := &pgconn.PgError{Code: "23503", TableName: "items", ConstraintName: "items_owner_id_fkey"}
	svc := newTestItemService(&fakeItemRepo{createErr: fkErr})

	_, err := svc.CreateItem(context.Background(), nil, &model.CreateItemPayload{Title: "book", OwnerID: 42})
	assert.ErrorIs(t, err, fkErr)
}
