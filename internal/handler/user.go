package handler

import (
	"context"
	"net/http"

	"github.com/deppfellow/bff-service/internal/database"
	"github.com/deppfellow/bff-service/internal/model"
	"github.com/deppfellow/bff-service/internal/server"
	"github.com/labstack/echo/v4"
)

type userService interface {
	GetUser(ctx context.Context, db database.DBTX, id int64) (*model.User, error)
	ListUsers(ctx context.Context, db database.DBTX, skip, limit int) ([]model.User, error)
	CreateUser(ctx context.Context, db database.DBTX, payload *model.CreateUserPayload) (*model.User, error)
}

type UserHandler struct {
	Handler
	users userService
}

func NewUserHandler(s *server.Server, users userService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// Register mounts the user routes on g.
func (h *UserHandler) Register(g *echo.Group) {
	g.GET("", Handle(h.Handler, h.ListUsers, http.StatusOK, &model.ListQuery{}))
	g.GET("/:id", Handle(h.Handler, h.GetUser, http.StatusOK, &model.GetByIDPayload{}))
	g.POST("", Handle(h.Handler, h.CreateUser, http.StatusCreated, &model.CreateUserPayload{}))
}

func (h *UserHandler) ListUsers(c echo.Context, query *model.ListQuery) ([]model.User, error) {
	db, err := session(c)
	if err != nil {
		return nil, err
	}
	return h.users.ListUsers(c.Request().Context(), db, query.Skip, query.Limit)
}

func (h *UserHandler) GetUser(c echo.Context, payload *model.GetByIDPayload) (*model.User, error) {
	db, err := session(c)
	if err != nil {
		return nil, err
	}
	return h.users.GetUser(c.Request().Context(), db, payload.ID)
}

func (h *UserHandler) CreateUser(c echo.Context, payload *model.CreateUserPayload) (*model.User, error) {
	db, err := session(c)
	if err != nil {
		return nil, err
	}
	return h.users.CreateUser(c.Request().Context(), db, payload)
}
