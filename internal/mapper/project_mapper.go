package mapper

import (
	"encoding/json"

	"logfiber-be/internal/entity"
	"logfiber-be/internal/model"
)

type ProjectMapper struct{}

func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

func (m *ProjectMapper) ToEntity(p *model.Project) *entity.Project {
	if p == nil {
		return nil
	}

	e := &entity.Project{
		Id:        p.Id,
		Slug:      p.Slug,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		e.UpdatedAt = &t
	}
	return e
}

func (m *ProjectMapper) ToModel(p *entity.Project) *model.Project {
	if p == nil {
		return nil
	}
	return &model.Project{
		Id:   p.Id,
		Slug: p.Slug,
		Name: p.Name,
	}
}

type AlarmRuleMapper struct{}

func NewAlarmRuleMapper() *AlarmRuleMapper {
	return &AlarmRuleMapper{}
}

func (m *AlarmRuleMapper) ToEntity(r *model.AlarmRule) *entity.AlarmRule {
	if r == nil {
		return nil
	}

	var levels []string
	if len(r.Levels) > 0 {
		_ = json.Unmarshal(r.Levels, &levels)
	}

	var delivery entity.DeliveryMethods
	if len(r.Delivery) > 0 {
		_ = json.Unmarshal(r.Delivery, &delivery)
	}

	return &entity.AlarmRule{
		Id:          r.Id,
		ProjectId:   r.ProjectId,
		LogType:     r.LogType,
		Levels:      levels,
		Environment: r.Environment,
		Message:     r.Message,
		Delivery:    delivery,
		CreatedAt:   r.CreatedAt,
	}
}

func (m *AlarmRuleMapper) ToEntities(models []*model.AlarmRule) []*entity.AlarmRule {
	entities := make([]*entity.AlarmRule, 0, len(models))
	for _, r := range models {
		entities = append(entities, m.ToEntity(r))
	}
	return entities
}

func (m *AlarmRuleMapper) ToModel(r *entity.AlarmRule) *model.AlarmRule {
	if r == nil {
		return nil
	}
	return &model.AlarmRule{
		Id:          r.Id,
		ProjectId:   r.ProjectId,
		LogType:     r.LogType,
		Levels:      marshalJSON(r.Levels),
		Environment: r.Environment,
		Message:     r.Message,
		Delivery:    marshalJSON(r.Delivery),
	}
}
