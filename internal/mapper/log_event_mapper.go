package mapper

import (
	"encoding/json"

	"logfiber-be/internal/entity"
	"logfiber-be/internal/model"

	"gorm.io/datatypes"
)

type LogEventMapper struct{}

func NewLogEventMapper() *LogEventMapper {
	return &LogEventMapper{}
}

func (m *LogEventMapper) ToEntity(ev *model.LogEvent) *entity.LogEvent {
	if ev == nil {
		return nil
	}

	var frames []entity.StackFrame
	if len(ev.StackTrace) > 0 {
		_ = json.Unmarshal(ev.StackTrace, &frames)
	}

	var details map[string]interface{}
	if len(ev.Details) > 0 {
		_ = json.Unmarshal(ev.Details, &details)
	}

	var request map[string]interface{}
	if len(ev.Request) > 0 {
		_ = json.Unmarshal(ev.Request, &request)
	}

	return &entity.LogEvent{
		Id:            ev.Id,
		ProjectId:     ev.ProjectId,
		Level:         ev.Level,
		Environment:   ev.Environment,
		LogType:       ev.LogType,
		Message:       ev.Message,
		StackTrace:    frames,
		RawStackTrace: ev.RawStackTrace,
		Details:       details,
		DetailString:  ev.DetailString,
		Request:       request,
		Hostname:      ev.Hostname,
		TimestampMS:   ev.TimestampMS,
		CreatedAt:     ev.CreatedAt,
	}
}

func (m *LogEventMapper) ToEntities(models []*model.LogEvent) []*entity.LogEvent {
	entities := make([]*entity.LogEvent, 0, len(models))
	for _, ev := range models {
		entities = append(entities, m.ToEntity(ev))
	}
	return entities
}

func (m *LogEventMapper) ToModel(ev *entity.LogEvent) *model.LogEvent {
	if ev == nil {
		return nil
	}

	return &model.LogEvent{
		Id:            ev.Id,
		ProjectId:     ev.ProjectId,
		Level:         ev.Level,
		Environment:   ev.Environment,
		LogType:       ev.LogType,
		Message:       ev.Message,
		StackTrace:    marshalJSON(ev.StackTrace),
		RawStackTrace: ev.RawStackTrace,
		Details:       marshalJSON(ev.Details),
		DetailString:  ev.DetailString,
		Request:       marshalJSON(ev.Request),
		Hostname:      ev.Hostname,
		TimestampMS:   ev.TimestampMS,
		CreatedAt:     ev.CreatedAt,
	}
}

func marshalJSON(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}
