// Package model defines the records persisted by the repositories and the
// request payloads bound by the handlers.
package model

import "github.com/deppfellow/bff-service/internal/validation"

const (
	DefaultSkip  = 0
	DefaultLimit = 20
)

// GetByIDPayload binds the {id} path parameter. Any integer is accepted;
// ids that match no row are a 404, non-integers fail binding with a 400.
type GetByIDPayload struct {
	ID int64 `param:"id"`
}

func (p *GetByIDPayload) Validate() error {
	return validation.Struct(p)
}

// ListQuery binds the offset/limit query parameters of list endpoints.
type ListQuery struct {
	Skip  int `query:"skip" validate:"min=0"`
	Limit int `query:"limit" validate:"min=0"`
}

func (q *ListQuery) SetDefaults() {
	q.Skip = DefaultSkip
	q.Limit = DefaultLimit
}

func (q *ListQuery) Validate() error {
	return validation.Struct(q)
}
