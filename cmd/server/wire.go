//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"hipchat_notify/internal/app"
	"hipchat_notify/internal/config"
	"hipchat_notify/internal/hipchat"
	"hipchat_notify/internal/http"
	"hipchat_notify/internal/http/controller"
	"hipchat_notify/internal/logging"
	"hipchat_notify/internal/metrics"
	"hipchat_notify/internal/service/notify"
)

func InitializeApp() (*app.App, error) {
	wire.Build(
		config.New,
		logging.NewBase,
		newHipChatClient,
		logging.NewAppLogger,
		wire.Bind(new(notify.Sender), new(*hipchat.Client)),
		wire.Bind(new(logging.RoomNotifier), new(*hipchat.Client)),
		metrics.NewMetrics,
		notify.NewService,
		controller.NewHandler,
		http.NewRouter,
		app.NewApp,
	)
	return &app.App{}, nil
}
