package model

import "github.com/deppfellow/bff-service/internal/validation"

// Item is a row of the items table. A nil Description is stored and
// returned as null.
type Item struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	OwnerID     int64   `json:"owner_id"`
}

// CreateItemPayload is the body of POST /api/v1/items. The owner is
// checked by the database foreign key, not here.
type CreateItemPayload struct {
	Title       string  `json:"title" validate:"required,max=256"`
	Description *string `json:"description"`
	OwnerID     int64   `json:"owner_id" validate:"required,min=1"`
}

func (p *CreateItemPayload) Validate() error {
	return validation.Struct(p)
}
