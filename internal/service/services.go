package service

import (
	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/internal/validators"
	"github.com/MKhiriev/go-contacts/models"
)

type Services struct {
	AuthService      AuthService
	UserService      UserService
	CircleService    CircleService
	HandshakeService HandshakeService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	validator := validators.NewContactsValidator(cfg.App.PasswordMinLength)

	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	circleService := NewCircleService(storages.CircleRepository, validator, logger)

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		UserService:      NewUserService(storages.UserRepository, storages.CircleRepository, circleService, validator, logger),
		CircleService:    circleService,
		HandshakeService: NewHandshakeService(storages.HandshakeRepository, circleService, cfg.App, logger),
		AppInfoService:   appInfoService,
	}, nil
}
