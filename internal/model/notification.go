package model

import "hipchat_notify/internal/domain"

// Notification is one request to notify a room or a user.
type Notification struct {
	Target  string
	Kind    domain.Kind
	Message string
	Format  domain.Format
	Color   domain.Color
	Notify  bool
	Label   string
}

// Payload is the JSON body the v2 API expects.
type Payload struct {
	Message       string        `json:"message"`
	MessageFormat domain.Format `json:"message_format"`
	Color         domain.Color  `json:"color"`
	Notify        bool          `json:"notify"`
	From          string        `json:"from"`
}

func (n Notification) Payload() Payload {
	return Payload{
		Message:       domain.Truncate(n.Message, domain.MaxMessageLength),
		MessageFormat: n.Format,
		Color:         n.Color,
		Notify:        n.Notify,
		From:          domain.Truncate(n.Label, domain.MaxLabelLength),
	}
}
