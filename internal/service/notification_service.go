package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-directory/internal/config"
	"github.com/spec-kit/employee-directory/internal/events"
	"github.com/spec-kit/employee-directory/internal/persistence"
)

// NotificationService forwards employee lifecycle events to the log and to a
// Redis channel for external consumers.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	redis      *persistence.Redis
	channel    string
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, redis *persistence.Redis, cfg config.EventsConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		redis:      redis,
		channel:    cfg.RedisChannel,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventEmployeeRegistered, n.handleEvent)
	n.dispatcher.Subscribe(events.EventEmployeeUpdated, n.handleEvent)
	n.dispatcher.Subscribe(events.EventEmployeeDeleted, n.handleEvent)
}

func (n *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	n.logger.Info("employee event",
		zap.String("type", string(event.Type)),
		zap.Int64("employee_id", event.EmployeeID),
		zap.String("event_id", event.ID))
	n.publishToRedis(ctx, event)
	return nil
}

func (n *NotificationService) publishToRedis(ctx context.Context, event events.Event) {
	if n.redis == nil || n.channel == "" {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		n.logger.Warn("marshal event", zap.Error(err))
		return
	}
	if err := n.redis.Publish(ctx, n.channel, payload); err != nil {
		n.logger.Warn("publish event to redis", zap.Error(err))
	}
}
