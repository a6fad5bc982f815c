package main

import (
	"hipchat_notify/internal/config"
	"hipchat_notify/internal/hipchat"
	"hipchat_notify/internal/logging"
)

// newHipChatClient gives the client the base logger. The client also feeds the
// room sink, and logging through the app logger would loop back into it.
func newHipChatClient(cfg *config.Config, base logging.Base) *hipchat.Client {
	return hipchat.NewFromConfig(cfg, base.Logger)
}
