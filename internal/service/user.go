package service

import (
	"context"
	"errors"

	"github.com/deppfellow/bff-service/internal/database"
	"github.com/deppfellow/bff-service/internal/errs"
	"github.com/deppfellow/bff-service/internal/model"
	"github.com/deppfellow/bff-service/internal/repository"
	"github.com/deppfellow/bff-service/internal/sqlerr"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const (
	userNotFoundMessage      = "User not found"
	emailRegisteredMessage   = "Email already registered"
	emailUniqueConstraintCol = "email"
)

type userRepository interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, skip, limit int) ([]model.User, error)
	Create(ctx context.Context, user *model.User) (*model.User, error)
}

// WelcomeNotifier schedules the welcome email after a sign-up.
type WelcomeNotifier interface {
	EnqueueWelcomeEmail(ctx context.Context, to, username string) error
}

type UserService struct {
	users      func(db database.DBTX) userRepository
	notifier   WelcomeNotifier
	bcryptCost int
}

// NewUserService builds a UserService. notifier may be nil, in which case
// no welcome email is sent.
func NewUserService(repos *repository.Repositories, notifier WelcomeNotifier) *UserService {
	return &UserService{
		users: func(db database.DBTX) userRepository {
			return repos.Users(db)
		},
		notifier:   notifier,
		bcryptCost: bcrypt.DefaultCost,
	}
}

func (s *UserService) GetUser(ctx context.Context, db database.DBTX, id int64) (*model.User, error) {
	user, err := s.users(db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NewNotFoundError(userNotFoundMessage, nil)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, db database.DBTX, skip, limit int) ([]model.User, error) {
	return s.users(db).List(ctx, skip, limit)
}

// CreateUser registers a user. The email must not be taken; the password
// is stored as a bcrypt hash only.
//
// Two concurrent sign-ups with the same email can both pass the lookup;
// the loser then hits the unique constraint and gets the same Conflict.
func (s *UserService) CreateUser(ctx context.Context, db database.DBTX, payload *model.CreateUserPayload) (*model.User, error) {
	users := s.users(db)

	_, err := users.GetByEmail(ctx, payload.Email)
	switch {
	case err == nil:
		return nil, errs.NewConflictError(emailRegisteredMessage, nil)
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, errs.NewBadRequestError("Password must not exceed 72 bytes", nil, nil)
		}
		return nil, pkgerrors.Wrap(err, "failed to hash password")
	}

	user, err := users.Create(ctx, &model.User{
		Username:     payload.Username,
		Email:        payload.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if column, ok := sqlerr.UniqueViolationColumn(err); ok && column == emailUniqueConstraintCol {
			return nil, errs.NewConflictError(emailRegisteredMessage, nil)
		}
		return nil, err
	}

	logger := zerolog.Ctx(ctx)
	logger.Info().Int64("user_id", user.ID).Msg("user created")

	if s.notifier != nil {
		if err := s.notifier.EnqueueWelcomeEmail(ctx, user.Email, user.Username); err != nil {
			logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to enqueue welcome email")
		}
	}

	return user, nil
}
