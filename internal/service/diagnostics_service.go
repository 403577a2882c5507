package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/cascade-freight/chatbot-service/internal/events"
)

// DiagnosticsService surfaces domain events in the operator log. It is the
// only place delegate failures become visible; they never reach end users.
type DiagnosticsService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewDiagnosticsService creates the service.
func NewDiagnosticsService(dispatcher events.Dispatcher, logger *zap.Logger) *DiagnosticsService {
	return &DiagnosticsService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (d *DiagnosticsService) RegisterHandlers() {
	if d.dispatcher == nil {
		return
	}
	d.dispatcher.Subscribe(events.EventLoginSucceeded, d.handleLoginSucceeded)
	d.dispatcher.Subscribe(events.EventLoginFailed, d.handleLoginFailed)
	d.dispatcher.Subscribe(events.EventChatAnswered, d.handleChatAnswered)
	d.dispatcher.Subscribe(events.EventDelegateFailed, d.handleDelegateFailed)
}

func (d *DiagnosticsService) handleLoginSucceeded(_ context.Context, event events.Event) error {
	d.logger.Info("LoginSucceeded", zap.String("username", event.Username), zap.Any("payload", event.Payload))
	return nil
}

func (d *DiagnosticsService) handleLoginFailed(_ context.Context, event events.Event) error {
	d.logger.Warn("LoginFailed", zap.String("username", event.Username), zap.Any("payload", event.Payload))
	return nil
}

func (d *DiagnosticsService) handleChatAnswered(_ context.Context, event events.Event) error {
	d.logger.Info("ChatAnswered", zap.String("username", event.Username), zap.Any("payload", event.Payload))
	return nil
}

func (d *DiagnosticsService) handleDelegateFailed(_ context.Context, event events.Event) error {
	d.logger.Warn("DelegateFailed", zap.String("username", event.Username), zap.Any("payload", event.Payload))
	return nil
}
