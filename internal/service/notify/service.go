package notify

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"hipchat_notify/internal/domain"
	"hipchat_notify/internal/hipchat"
	"hipchat_notify/internal/metrics"
	"hipchat_notify/internal/model"
)

// Sender is implemented by *hipchat.Client.
type Sender interface {
	NotifyRoom(ctx context.Context, room, message string, opts ...hipchat.Option) (hipchat.Result, error)
	NotifyUser(ctx context.Context, user, message string, opts ...hipchat.Option) (hipchat.Result, error)
}

type Service struct {
	sender  Sender
	metrics metrics.Metrics
	log     *zap.Logger
}

func NewService(sender Sender, m metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{sender: sender, metrics: m, log: logger}
}

func (s *Service) Send(ctx context.Context, notification model.Notification) (hipchat.Result, error) {
	if !domain.IsValidKind(notification.Kind) {
		return hipchat.Result{}, domain.ErrInvalidKind
	}
	if notification.Format == "" {
		notification.Format = domain.DefaultFormat
	}
	if notification.Color == "" {
		notification.Color = domain.DefaultColor
	}

	opts := []hipchat.Option{
		hipchat.WithFormat(notification.Format),
		hipchat.WithNotify(notification.Notify),
	}

	start := time.Now()
	var (
		res hipchat.Result
		err error
	)
	switch notification.Kind {
	case domain.KindUser:
		res, err = s.sender.NotifyUser(ctx, notification.Target, notification.Message, opts...)
	default:
		opts = append(opts,
			hipchat.WithColor(notification.Color),
			hipchat.WithLabel(notification.Label),
		)
		res, err = s.sender.NotifyRoom(ctx, notification.Target, notification.Message, opts...)
	}

	outcome := outcomeOf(res, err)
	s.metrics.ObserveNotification(string(notification.Kind), outcome, time.Since(start).Seconds())

	if err != nil {
		fields := []zap.Field{
			zap.String("kind", string(notification.Kind)),
			zap.String("target", notification.Target),
			zap.String("color", string(notification.Color)),
			zap.String("format", string(notification.Format)),
			zap.Error(err),
		}
		if outcome == metrics.OutcomeRejected {
			s.log.Warn("notification rejected", fields...)
		} else {
			s.log.Error("notification failed", fields...)
		}
		return res, err
	}
	return res, nil
}

func outcomeOf(res hipchat.Result, err error) string {
	switch {
	case err != nil && IsValidationError(err):
		return metrics.OutcomeRejected
	case err != nil:
		return metrics.OutcomeFailed
	case res.Sent:
		return metrics.OutcomeSent
	default:
		return metrics.OutcomeLogged
	}
}

// IsValidationError reports whether err was raised before any request was made.
func IsValidationError(err error) bool {
	return errors.Is(err, domain.ErrEmptyTarget) ||
		errors.Is(err, domain.ErrEmptyMessage) ||
		errors.Is(err, domain.ErrInvalidColor) ||
		errors.Is(err, domain.ErrInvalidFormat) ||
		errors.Is(err, domain.ErrInvalidKind)
}
