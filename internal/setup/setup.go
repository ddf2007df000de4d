package setup

import (
	"github.com/crewchat-dev/crewchat/internal/config"
	"github.com/crewchat-dev/crewchat/internal/domain"
	"github.com/crewchat-dev/crewchat/internal/handler"
	"github.com/crewchat-dev/crewchat/internal/service"
	"github.com/crewchat-dev/crewchat/internal/storage/memory"
	"github.com/crewchat-dev/crewchat/internal/utils"
	"github.com/crewchat-dev/crewchat/internal/utils/jwt"
)

// Dependencies holds every initialized collaborator the router needs.
type Dependencies struct {
	Storage   *memory.Storage
	Scheduler *service.Scheduler
	Handler   *handler.Handler
	Jwt       *jwt.Jwt
	Config    *config.Config
}

// SetupDependencies wires the whole engine together: one id sequence, one
// storage, one scheduler, and the services on top.
func SetupDependencies(cfg *config.Config) *Dependencies {
	seq := domain.NewSequence()
	storage := memory.New(seq)
	clock := service.NewRealClock()
	scheduler := service.NewScheduler(clock)

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	msgValidator := &utils.MessageValidator{}
	tagger := service.NewTagging(storage, cfg.Public.TagPreviewLen)
	messages := service.NewMessage(storage, storage, tagger, msgValidator, cfg.Public.MessagesPerPage)
	standup := service.NewStandup(scheduler, messages, storage, clock)

	services := &handler.Services{
		Auth:          service.NewAuth(storage, jwtService, &utils.CredentialsValidator{}),
		Directory:     service.NewDirectory(storage, storage, &utils.ChannelNameValidator{}),
		Messages:      messages,
		Reactions:     service.NewReaction(storage, storage),
		Pins:          service.NewPin(storage, storage),
		Deferred:      service.NewDeferred(scheduler, messages, storage, msgValidator, clock),
		Standup:       standup,
		Search:        service.NewSearch(storage, msgValidator),
		Notifications: service.NewNotifications(storage, cfg.Public.NotificationsPageLimit),
		Stats:         service.NewStats(storage),
		Admin:         service.NewAdmin(storage, scheduler, standup, storage),
	}

	return &Dependencies{
		Storage:   storage,
		Scheduler: scheduler,
		Handler:   handler.New(services),
		Jwt:       jwtService,
		Config:    cfg,
	}
}
