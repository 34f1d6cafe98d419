package service

import (
	"github.com/deppfellow/bff-service/internal/repository"
	"github.com/deppfellow/bff-service/internal/server"
)

type Services struct {
	Users *UserService
	Items *ItemService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	// A nil *job.JobService must not end up inside a non-nil interface.
	var notifier WelcomeNotifier
	if s.Job != nil {
		notifier = s.Job
	}

	return &Services{
		Users: NewUserService(repos, notifier),
		Items: NewItemService(repos),
	}, nil
}
