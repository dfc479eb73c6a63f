package service

import (
	"context"
	"encoding/json"
	"fmt"

	"logfiber-be/internal/apperror"
	"logfiber-be/internal/constant"
	"logfiber-be/internal/dto"
	"logfiber-be/internal/pkg/logger"
	"logfiber-be/internal/repository/contract"
	"logfiber-be/pkg/events"
	pktNats "logfiber-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
	// ConsumeNats attaches alarm evaluation to the durable NATS stream, so
	// events ingested by other instances are evaluated too. The debounce
	// cache absorbs the overlap with the in-process bus.
	ConsumeNats(sub *pktNats.Subscriber) error
}

type consumerService struct {
	pubSub       *gochannel.GoChannel
	logs         contract.LogEventRepository
	alarmService IAlarmService
	log          logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	logs contract.LogEventRepository,
	alarmService IAlarmService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		logs:         logs,
		alarmService: alarmService,
		log:          log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, constant.LogIngestedTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) ConsumeNats(sub *pktNats.Subscriber) error {
	return sub.Subscribe("logs.LOG_INGESTED", "alarm-worker", func(ctx context.Context, event events.Event) error {
		idStr, _ := event.Payload()["eventId"].(string)
		eventId, err := uuid.Parse(idStr)
		if err != nil {
			// Malformed ids are dropped, not retried.
			cs.log.Error("consumer_service", "Invalid event id on NATS message", map[string]interface{}{
				"eventId": idStr,
			})
			return nil
		}
		return cs.evaluate(ctx, eventId)
	})
}

func (cs *consumerService) evaluate(ctx context.Context, eventId uuid.UUID) error {
	ev, err := cs.logs.FindById(ctx, eventId)
	if err != nil {
		return fmt.Errorf("load log event %s: %w", eventId, err)
	}
	if ev == nil {
		// Already purged between persist and evaluation; nothing to do.
		return nil
	}
	if err := cs.alarmService.EvaluateEvent(ctx, ev); err != nil {
		if apperror.IsNotFound(err) {
			// The project is gone; retrying will never help.
			cs.log.Error("consumer_service", "Alarm evaluation hit missing project", map[string]interface{}{
				"eventId": eventId.String(),
				"error":   err.Error(),
			})
			return nil
		}
		return err
	}
	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishLogIngestedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer_service", "Failed to unmarshal ingested message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if err := cs.evaluate(ctx, payload.EventId); err != nil {
		cs.log.Error("consumer_service", "Alarm evaluation failed", map[string]interface{}{
			"eventId": payload.EventId.String(),
			"error":   err.Error(),
		})
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
