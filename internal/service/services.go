package service

import (
	"blogz/internal/config"
	"blogz/internal/logger"
	"blogz/internal/store"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	BlogService    BlogService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, logger),
		SessionService: NewSessionService(storages.SessionRepository, cfg.App, logger),
		BlogService:    NewBlogService(storages.BlogRepository, storages.UserRepository, logger),
	}
}
