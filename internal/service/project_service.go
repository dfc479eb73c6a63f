package service

import (
	"context"

	"logfiber-be/internal/apperror"
	"logfiber-be/internal/dto"
	"logfiber-be/internal/entity"
	"logfiber-be/internal/repository/contract"

	"github.com/google/uuid"
)

type IProjectService interface {
	Create(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	Show(ctx context.Context, slug string) (*dto.ProjectResponse, error)
	CreateAlarmRule(ctx context.Context, slug string, req *dto.CreateAlarmRuleRequest) (*dto.AlarmRuleResponse, error)
	ListAlarmRules(ctx context.Context, slug string) ([]*dto.AlarmRuleResponse, error)
	DeleteAlarmRule(ctx context.Context, slug string, ruleId uuid.UUID) error
}

type projectService struct {
	projects contract.ProjectRepository
	alarms   contract.AlarmRuleRepository
}

func NewProjectService(projects contract.ProjectRepository, alarms contract.AlarmRuleRepository) IProjectService {
	return &projectService{
		projects: projects,
		alarms:   alarms,
	}
}

func (s *projectService) Create(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	existing, err := s.projects.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Inputf("project slug %q already taken", req.Slug)
	}

	project := &entity.Project{
		Slug: req.Slug,
		Name: req.Name,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	return projectToResponse(project), nil
}

func (s *projectService) Show(ctx context.Context, slug string) (*dto.ProjectResponse, error) {
	project, err := s.resolve(ctx, slug)
	if err != nil {
		return nil, err
	}
	return projectToResponse(project), nil
}

func (s *projectService) CreateAlarmRule(ctx context.Context, slug string, req *dto.CreateAlarmRuleRequest) (*dto.AlarmRuleResponse, error) {
	project, err := s.resolve(ctx, slug)
	if err != nil {
		return nil, err
	}

	if req.Delivery.Email == nil && req.Delivery.Slack == nil && req.Delivery.Webhook == nil {
		return nil, apperror.Inputf("alarm rule needs at least one delivery method")
	}

	rule := &entity.AlarmRule{
		ProjectId:   project.Id,
		LogType:     req.LogType,
		Levels:      []string(req.Level),
		Environment: req.Environment,
		Message:     req.Message,
		Delivery:    req.Delivery,
	}
	if err := s.alarms.Create(ctx, rule); err != nil {
		return nil, err
	}

	return alarmRuleToResponse(rule), nil
}

func (s *projectService) ListAlarmRules(ctx context.Context, slug string) ([]*dto.AlarmRuleResponse, error) {
	project, err := s.resolve(ctx, slug)
	if err != nil {
		return nil, err
	}

	rules, err := s.alarms.FindAllByProjectId(ctx, project.Id)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.AlarmRuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, alarmRuleToResponse(rule))
	}
	return responses, nil
}

func (s *projectService) DeleteAlarmRule(ctx context.Context, slug string, ruleId uuid.UUID) error {
	if _, err := s.resolve(ctx, slug); err != nil {
		return err
	}
	return s.alarms.Delete(ctx, ruleId)
}

func (s *projectService) resolve(ctx context.Context, slug string) (*entity.Project, error) {
	project, err := s.projects.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.NotFoundf("project %q", slug)
	}
	return project, nil
}

func projectToResponse(p *entity.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		Id:        p.Id,
		Slug:      p.Slug,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}

func alarmRuleToResponse(r *entity.AlarmRule) *dto.AlarmRuleResponse {
	return &dto.AlarmRuleResponse{
		Id:          r.Id,
		ProjectId:   r.ProjectId,
		LogType:     r.LogType,
		Level:       r.Levels,
		Environment: r.Environment,
		Message:     r.Message,
		Delivery:    r.Delivery,
	}
}
