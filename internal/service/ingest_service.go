package service

import (
	"context"
	"encoding/json"
	"time"

	"logfiber-be/internal/apperror"
	"logfiber-be/internal/constant"
	"logfiber-be/internal/dto"
	"logfiber-be/internal/entity"
	"logfiber-be/internal/pkg/logger"
	"logfiber-be/internal/repository/contract"
	"logfiber-be/pkg/events"
	pktNats "logfiber-be/pkg/nats"
	"logfiber-be/pkg/searchindex"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IIngestService interface {
	Ingest(ctx context.Context, projectSlug string, req *dto.IngestLogRequest) (*dto.LogEventResponse, error)
}

type ingestService struct {
	projects   contract.ProjectRepository
	logs       contract.LogEventRepository
	index      searchindex.Client // nil when the search index is disabled
	collection string
	pubSub     *gochannel.GoChannel
	natsPub    *pktNats.Publisher // nil unless NATS is configured
	log        logger.ILogger
}

func NewIngestService(
	projects contract.ProjectRepository,
	logs contract.LogEventRepository,
	index searchindex.Client,
	collection string,
	pubSub *gochannel.GoChannel,
	natsPub *pktNats.Publisher,
	log logger.ILogger,
) IIngestService {
	return &ingestService{
		projects:   projects,
		logs:       logs,
		index:      index,
		collection: collection,
		pubSub:     pubSub,
		natsPub:    natsPub,
		log:        log,
	}
}

func (s *ingestService) Ingest(ctx context.Context, projectSlug string, req *dto.IngestLogRequest) (*dto.LogEventResponse, error) {
	project, err := s.projects.FindBySlug(ctx, projectSlug)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.NotFoundf("project %q", projectSlug)
	}

	ev := &entity.LogEvent{
		ProjectId:     project.Id,
		Level:         req.Level,
		Environment:   req.Environment,
		LogType:       req.LogType,
		Message:       req.Message,
		StackTrace:    req.StackTrace,
		RawStackTrace: req.RawStackTrace,
		Details:       req.Details,
		Request:       req.Request,
		Hostname:      req.Hostname,
		TimestampMS:   req.TimestampMS,
		CreatedAt:     time.Now().UTC(),
	}
	if ev.TimestampMS == 0 {
		ev.TimestampMS = time.Now().UnixMilli()
	}
	// detailString is computed once at ingestion and reused as the details
	// text surface everywhere after.
	if len(req.Details) > 0 {
		if b, err := json.Marshal(req.Details); err == nil {
			ev.DetailString = string(b)
		}
	}

	// Primary store first; it is the source of truth.
	if err := s.logs.Create(ctx, ev); err != nil {
		return nil, err
	}

	// Mirror into the search index, best-effort.
	if s.index != nil {
		if err := s.index.CreateDocument(ctx, s.collection, IndexDocument(ev)); err != nil {
			s.log.Warn("ingest_service", "Failed to mirror log event into search index", map[string]interface{}{
				"eventId": ev.Id.String(),
				"error":   err.Error(),
			})
		}
	}

	s.publishIngested(ctx, ev)

	return LogEventToResponse(ev), nil
}

func (s *ingestService) publishIngested(ctx context.Context, ev *entity.LogEvent) {
	payload, err := json.Marshal(dto.PublishLogIngestedMessage{
		EventId:   ev.Id,
		ProjectId: ev.ProjectId,
	})
	if err != nil {
		s.log.Error("ingest_service", "Failed to marshal ingested message", map[string]interface{}{
			"eventId": ev.Id.String(),
			"error":   err.Error(),
		})
		return
	}

	msg := message.NewMessage(uuid.NewString(), payload)
	if err := s.pubSub.Publish(constant.LogIngestedTopic, msg); err != nil {
		s.log.Error("ingest_service", "Failed to publish ingested message", map[string]interface{}{
			"eventId": ev.Id.String(),
			"error":   err.Error(),
		})
	}

	if s.natsPub != nil {
		err := s.natsPub.Publish(ctx, events.LogIngested{
			EventId:    ev.Id.String(),
			ProjectId:  ev.ProjectId.String(),
			OccurredAt: time.Now(),
		})
		if err != nil {
			s.log.Warn("ingest_service", "Failed to publish ingested event to NATS", map[string]interface{}{
				"eventId": ev.Id.String(),
				"error":   err.Error(),
			})
		}
	}
}

// IndexDocument flattens a log event into its search-index mirror. The stack
// and details surfaces are stored pre-flattened so index-side matching sees
// the same text the fallback evaluator derives.
func IndexDocument(ev *entity.LogEvent) map[string]interface{} {
	return map[string]interface{}{
		"id":            ev.Id.String(),
		"projectId":     ev.ProjectId.String(),
		"level":         ev.Level,
		"environment":   ev.Environment,
		"logType":       ev.LogType,
		"message":       ev.Message,
		"rawStackTrace": ev.StackTraceText(),
		"detailString":  ev.DetailsText(),
		"hostname":      ev.Hostname,
		"timestampMS":   ev.TimestampMS,
	}
}

// LogEventToResponse maps a stored event to its API shape.
func LogEventToResponse(ev *entity.LogEvent) *dto.LogEventResponse {
	return &dto.LogEventResponse{
		Id:            ev.Id,
		ProjectId:     ev.ProjectId,
		Level:         ev.Level,
		Environment:   ev.Environment,
		LogType:       ev.LogType,
		Message:       ev.Message,
		StackTrace:    ev.StackTrace,
		RawStackTrace: ev.RawStackTrace,
		Details:       ev.Details,
		Hostname:      ev.Hostname,
		TimestampMS:   ev.TimestampMS,
	}
}
