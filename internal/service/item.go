package service

import (
	"context"
	"errors"

	"github.com/deppfellow/bff-service/internal/database"
	"github.com/deppfellow/bff-service/internal/errs"
	"github.com/deppfellow/bff-service/internal/model"
	"github.com/deppfellow/bff-service/internal/repository"
)

const itemNotFoundMessage = "Item not found"

type itemRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Item, error)
	List(ctx context.Context, skip, limit int) ([]model.Item, error)
	Create(ctx context.Context, item *model.Item) (*model.Item, error)
}

type ItemService struct {
	items func(db database.DBTX) itemRepository
}

func NewItemService(repos *repository.Repositories) *ItemService {
	return &ItemService{
		items: func(db database.DBTX) itemRepository {
			return repos.Items(db)
		},
	}
}

func (s *ItemService) GetItem(ctx context.Context, db database.DBTX, id int64) (*model.Item, error) {
	item, err := s.items(db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NewNotFoundError(itemNotFoundMessage, nil)
		}
		return nil, err
	}
	return item, nil
}

func (s *ItemService) ListItems(ctx context.Context, db database.DBTX, skip, limit int) ([]model.Item, error) {
	return s.items(db).List(ctx, skip, limit)
}

// CreateItem inserts the item as given. Owner existence is left to the
// foreign key; its violation is translated by the error funnel.
func (s *ItemService) CreateItem(ctx context.Context, db database.DBTX, payload *model.CreateItemPayload) (*model.Item, error) {
	return s.items(db).Create(ctx, &model.Item{
		Title:       payload.Title,
		Description: payload.Description,
		OwnerID:     payload.OwnerID,
	})
}
