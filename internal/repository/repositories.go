package repository

import (
	"github.com/deppfellow/bff-service/internal/database"
)

// Repositories builds repositories bound to a session. Services keep one of
// these and ask for a repository on every call.
type Repositories struct{}

// NewRepositories constructs the repository factory.
func NewRepositories() *Repositories {
	return &Repositories{}
}

// Users returns a UserRepository operating on db.
func (r *Repositories) Users(db database.DBTX) *UserRepository {
	return NewUserRepository(db)
}

// Items returns an ItemRepository operating on db.
func (r *Repositories) Items(db database.DBTX) *ItemRepository {
	return NewItemRepository(db)
}
