package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/volunteer-hub/internal/events"
)

// NotificationService logs notifications for domain events. There is no real
// delivery channel; the log line stands in for one.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventSignupCreated, n.handleSignupCreated)
	n.dispatcher.Subscribe(events.EventRegistrationCompleted, n.handleRegistrationCompleted)
	n.dispatcher.Subscribe(events.EventCertificateIssued, n.handleCertificateIssued)
}

func (n *NotificationService) handleUserRegistered(_ context.Context, event events.Event) error {
	n.logger.Info("UserRegistered", zap.String("session_id", event.SessionID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleSignupCreated(_ context.Context, event events.Event) error {
	n.logger.Info("SignupCreated", zap.String("session_id", event.SessionID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleRegistrationCompleted(_ context.Context, event events.Event) error {
	n.logger.Info("RegistrationCompleted", zap.String("session_id", event.SessionID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleCertificateIssued(_ context.Context, event events.Event) error {
	n.logger.Info("CertificateIssued", zap.String("session_id", event.SessionID), zap.Any("payload", event.Payload))
	return nil
}
