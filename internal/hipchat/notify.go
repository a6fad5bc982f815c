package hipchat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"hipchat_notify/internal/domain"
	"hipchat_notify/internal/model"
)

// Result describes what happened to one notification.
type Result struct {
	// Sent is false when no token was available and the message was logged.
	Sent       bool
	StatusCode int
}

// NotifyRoom sends a notification to a room, given by id or name.
// See https://www.hipchat.com/docs/apiv2/method/send_room_notification.
func (c *Client) NotifyRoom(ctx context.Context, room, message string, opts ...Option) (Result, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	n := model.Notification{
		Target:  room,
		Kind:    domain.KindRoom,
		Message: message,
		Format:  s.format,
		Color:   s.color,
		Notify:  s.notify,
		Label:   s.label,
	}
	return c.deliver(ctx, n, s.token)
}

// NotifyUser sends a private message to a user, given by id, email address or
// mention name. Color and label only apply to rooms and are ignored here.
// See https://www.hipchat.com/docs/apiv2/method/private_message_user.
func (c *Client) NotifyUser(ctx context.Context, user, message string, opts ...Option) (Result, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	n := model.Notification{
		Target:  user,
		Kind:    domain.KindUser,
		Message: message,
		Format:  s.format,
		Color:   domain.DefaultColor,
		Notify:  s.notify,
	}
	return c.deliver(ctx, n, s.token)
}

func validate(n model.Notification) error {
	if n.Target == "" {
		return domain.ErrEmptyTarget
	}
	if n.Message == "" {
		return domain.ErrEmptyMessage
	}
	if !domain.IsValidColor(n.Color) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidColor, n.Color)
	}
	if !domain.IsValidFormat(n.Format) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidFormat, n.Format)
	}
	return nil
}

func (c *Client) endpoint(n model.Notification) string {
	if n.Kind == domain.KindUser {
		return c.UserURL(n.Target)
	}
	return c.RoomURL(n.Target)
}

func (c *Client) deliver(ctx context.Context, n model.Notification, token string) (Result, error) {
	if err := validate(n); err != nil {
		return Result{}, err
	}

	if token == "" {
		token = c.tokens.Token()
	}
	if token == "" {
		c.log.Debug("HipChat API token not found, logging message instead",
			zap.String("kind", string(n.Kind)),
			zap.String("target", n.Target),
			zap.String("color", string(n.Color)),
			zap.String("format", string(n.Format)),
			zap.String("message", n.Message),
		)
		return Result{}, nil
	}

	ctx, span := c.tracer.Start(ctx, "hipchat.notify", trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(
		attribute.String("hipchat.kind", string(n.Kind)),
		attribute.String("hipchat.target", n.Target),
		attribute.String("hipchat.color", string(n.Color)),
		attribute.Bool("hipchat.notify", n.Notify),
	)
	defer span.End()

	res, err := c.post(ctx, c.endpoint(n), token, n.Payload())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "notify failed")
		return res, err
	}
	span.SetAttributes(attribute.Int("http.status_code", res.StatusCode))
	return res, nil
}

func (c *Client) post(ctx context.Context, url, token string, payload model.Payload) (Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, fmt.Errorf("hipchat marshal: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("hipchat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("hipchat post: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{StatusCode: resp.StatusCode}, newAPIError(resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return Result{Sent: true, StatusCode: resp.StatusCode}, nil
}
