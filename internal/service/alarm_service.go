package service

import (
	"context"
	"fmt"
	"time"

	"logfiber-be/internal/apperror"
	"logfiber-be/internal/constant"
	"logfiber-be/internal/entity"
	"logfiber-be/internal/pkg/logger"
	"logfiber-be/internal/repository/contract"
	"logfiber-be/pkg/alerting"
	"logfiber-be/pkg/cache"
)

type IAlarmService interface {
	// EvaluateEvent matches every alarm rule of the event's project and
	// dispatches the non-debounced matches.
	EvaluateEvent(ctx context.Context, ev *entity.LogEvent) error
}

type alarmService struct {
	projects   contract.ProjectRepository
	alarms     contract.AlarmRuleRepository
	cache      cache.Cache // nil disables debouncing: every match dispatches
	dispatcher *alerting.Dispatcher
	clientURL  string
	log        logger.ILogger
}

func NewAlarmService(
	projects contract.ProjectRepository,
	alarms contract.AlarmRuleRepository,
	debounceCache cache.Cache,
	dispatcher *alerting.Dispatcher,
	clientURL string,
	log logger.ILogger,
) IAlarmService {
	return &alarmService{
		projects:   projects,
		alarms:     alarms,
		cache:      debounceCache,
		dispatcher: dispatcher,
		clientURL:  clientURL,
		log:        log,
	}
}

func (s *alarmService) EvaluateEvent(ctx context.Context, ev *entity.LogEvent) error {
	project, err := s.projects.FindById(ctx, ev.ProjectId)
	if err != nil {
		return err
	}
	if project == nil {
		// An unresolvable project is an error, never a silent skip.
		return apperror.NotFoundf("project %s for event %s", ev.ProjectId, ev.Id)
	}

	rules, err := s.alarms.FindAllByProjectId(ctx, project.Id)
	if err != nil {
		return err
	}
	if len(rules) == 0 {
		return nil
	}

	// One delivery-neutral payload for every channel of every rule.
	payload := alerting.BuildPayload(project, ev, s.clientURL)

	for _, rule := range rules {
		if err := s.evaluateRule(ctx, rule, ev, payload); err != nil {
			// A broken rule must not stop evaluation of its siblings.
			s.log.Error("alarm_service", "Alarm rule evaluation failed", map[string]interface{}{
				"ruleId":  rule.Id.String(),
				"eventId": ev.Id.String(),
				"error":   err.Error(),
			})
		}
	}

	return nil
}

func (s *alarmService) evaluateRule(ctx context.Context, rule *entity.AlarmRule, ev *entity.LogEvent, payload *alerting.Payload) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during rule evaluation: %v", r)
		}
	}()

	if !alerting.RuleMatches(rule, ev) {
		return nil
	}

	if s.cache != nil {
		key := alerting.DebounceKey(ev)

		_, found, err := s.cache.Get(ctx, key)
		if err != nil {
			// Treat a broken cache as a miss; losing debouncing beats
			// losing the alarm.
			s.log.Warn("alarm_service", "Debounce cache read failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		if found {
			s.log.Debug("alarm_service", "Alarm suppressed by debounce", map[string]interface{}{
				"ruleId": rule.Id.String(),
				"key":    key,
			})
			return nil
		}

		ttl := time.Duration(constant.AlarmDebounceTTLSeconds) * time.Second
		if err := s.cache.Set(ctx, key, "1", ttl); err != nil {
			s.log.Warn("alarm_service", "Debounce cache write failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
	}

	s.dispatcher.Dispatch(rule.Delivery, payload)
	return nil
}
