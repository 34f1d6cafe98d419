package handler

import (
	"context"
	"net/http"

	"github.com/deppfellow/bff-service/internal/database"
	"github.com/deppfellow/bff-service/internal/model"
	"github.com/deppfellow/bff-service/internal/server"
	"github.com/labstack/echo/v4"
)

type itemService interface {
	GetItem(ctx context.Context, db database.DBTX, id int64) (*model.Item, error)
	ListItems(ctx context.Context, db database.DBTX, skip, limit int) ([]model.Item, error)
	CreateItem(ctx context.Context, db database.DBTX, payload *model.CreateItemPayload) (*model.Item, error)
}

type ItemHandler struct {
	Handler
	items itemService
}

func NewItemHandler(s *server.Server, items itemService) *ItemHandler {
	return &ItemHandler{
		Handler: NewHandler(s),
		items:   items,
	}
}

// Register mounts the item routes on g.
func (h *ItemHandler) Register(g *echo.Group) {
	g.GET("", Handle(h.Handler, h.ListItems, http.StatusOK, &model.ListQuery{}))
	g.GET("/:id", Handle(h.Handler, h.GetItem, http.StatusOK, &model.GetByIDPayload{}))
	g.POST("", Handle(h.Handler, h.CreateItem, http.StatusCreated, &model.CreateItemPayload{}))
}

func (h *ItemHandler) ListItems(c echo.Context, query *model.ListQuery) ([]model.Item, error) {
	db, err := session(c)
	if err != nil {
		return nil, err
	}
	return h.items.ListItems(c.Request().Context(), db, query.Skip, query.Limit)
}

func (h *ItemHandler) GetItem(c echo.Context, payload *model.GetByIDPayload) (*model.Item, error) {
	db, err := session(c)
	if err != nil {
		return nil, err
	}
	return h.items.GetItem(c.Request().Context(), db, payload.ID)
}

func (h *ItemHandler) CreateItem(c echo.Context, payload *model.CreateItemPayload) (*model.Item, error) {
	db, err := session(c)
	if err != nil {
		return nil, err
	}
	return h.items.CreateItem(c.Request().Context(), db, payload)
}
