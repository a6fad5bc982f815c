package hipchat

import "hipchat_notify/internal/domain"

type settings struct {
	color  domain.Color
	format domain.Format
	notify bool
	label  string
	token  string
}

func defaultSettings() settings {
	return settings{
		color:  domain.DefaultColor,
		format: domain.DefaultFormat,
	}
}

// Option adjusts a single notification.
type Option func(*settings)

// WithColor sets the background color of a room notification.
func WithColor(color domain.Color) Option {
	return func(s *settings) { s.color = color }
}

// WithFormat sets how the message body is rendered: html or text.
func WithFormat(format domain.Format) Option {
	return func(s *settings) { s.format = format }
}

// WithNotify makes the message trigger a user-visible alert (tab color, sound,
// mobile push), subject to each recipient's preferences.
func WithNotify(notify bool) Option {
	return func(s *settings) { s.notify = notify }
}

// WithLabel sets the name shown next to the sender of a room notification.
// It is cut to 64 characters.
func WithLabel(label string) Option {
	return func(s *settings) { s.label = label }
}

// WithToken uses token for this call instead of the client's token source.
func WithToken(token string) Option {
	return func(s *settings) { s.token = token }
}
