// Command hipchat-notify sends one notification to a HipChat room or user.
//
//	hipchat-notify -room "Customer Service" -color green "Deploy finished"
//	hipchat-notify -user hugo "Hello, Hugo"
//
// The token is read from HIPCHAT_API_TOKEN unless -token is given. Without a
// token the message is only logged.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"hipchat_notify/internal/config"
	"hipchat_notify/internal/domain"
	"hipchat_notify/internal/hipchat"
	"hipchat_notify/internal/logging"
)

func main() {
	var (
		room    string
		user    string
		color   string
		format  string
		label   string
		token   string
		notify  bool
		timeout time.Duration
	)
	flag.StringVar(&room, "room", "", "room id or name to notify")
	flag.StringVar(&user, "user", "", "user id, email or mention name to message")
	flag.StringVar(&color, "color", "", "room notification color: yellow, green, red, purple, gray, random")
	flag.StringVar(&format, "format", "", "message format: html or text")
	flag.StringVar(&label, "label", "", "label shown next to the sender name (rooms only)")
	flag.StringVar(&token, "token", "", "API token, overrides HIPCHAT_API_TOKEN")
	flag.BoolVar(&notify, "notify", false, "trigger a user notification")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
	flag.Parse()

	message := strings.Join(flag.Args(), " ")
	if (room == "") == (user == "") || message == "" {
		fmt.Fprintln(os.Stderr, "usage: hipchat-notify (-room ROOM | -user USER) [flags] MESSAGE")
		flag.PrintDefaults()
		os.Exit(2)
	}

	parsedColor, err := domain.ParseColor(color)
	if err != nil {
		fatalf("invalid -color %q", color)
	}
	parsedFormat, err := domain.ParseFormat(format)
	if err != nil {
		fatalf("invalid -format %q", format)
	}

	cfg := config.New()
	logger, err := logging.New(cfg)
	if err != nil {
		fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	client := hipchat.NewFromConfig(cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := []hipchat.Option{
		hipchat.WithFormat(parsedFormat),
		hipchat.WithNotify(notify),
		hipchat.WithToken(token),
	}
	var res hipchat.Result
	if room != "" {
		opts = append(opts, hipchat.WithColor(parsedColor), hipchat.WithLabel(label))
		res, err = client.NotifyRoom(ctx, room, message, opts...)
	} else {
		res, err = client.NotifyUser(ctx, user, message, opts...)
	}
	if err != nil {
		var apiErr *hipchat.APIError
		if errors.As(err, &apiErr) {
			logger.Error("hipchat rejected notification",
				zap.Int("status", apiErr.StatusCode),
				zap.String("message", apiErr.Message),
			)
		}
		fatalf("notify: %v", err)
	}
	if !res.Sent {
		fmt.Fprintln(os.Stderr, "no HipChat token configured, message logged only")
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "hipchat-notify: "+format+"\n", args...)
	os.Exit(1)
}
