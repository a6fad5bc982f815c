package hipchat

import (
	"context"

	"hipchat_notify/internal/domain"
)

// Color helpers. They only target rooms; the color overrides any WithColor
// option passed alongside.

func (c *Client) Yellow(ctx context.Context, room, message string, opts ...Option) (Result, error) {
	return c.NotifyRoom(ctx, room, message, colored(opts, domain.ColorYellow)...)
}

func (c *Client) Gray(ctx context.Context, room, message string, opts ...Option) (Result, error) {
	return c.NotifyRoom(ctx, room, message, colored(opts, domain.ColorGray)...)
}

// Grey is Gray.
func (c *Client) Grey(ctx context.Context, room, message string, opts ...Option) (Result, error) {
	return c.Gray(ctx, room, message, opts...)
}

func (c *Client) Green(ctx context.Context, room, message string, opts ...Option) (Result, error) {
	return c.NotifyRoom(ctx, room, message, colored(opts, domain.ColorGreen)...)
}

func (c *Client) Purple(ctx context.Context, room, message string, opts ...Option) (Result, error) {
	return c.NotifyRoom(ctx, room, message, colored(opts, domain.ColorPurple)...)
}

func (c *Client) Red(ctx context.Context, room, message string, opts ...Option) (Result, error) {
	return c.NotifyRoom(ctx, room, message, colored(opts, domain.ColorRed)...)
}

func colored(opts []Option, color domain.Color) []Option {
	out := make([]Option, 0, len(opts)+1)
	out = append(out, opts...)
	return append(out, WithColor(color))
}
