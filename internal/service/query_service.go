package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"logfiber-be/internal/apperror"
	"logfiber-be/internal/constant"
	"logfiber-be/internal/dto"
	"logfiber-be/internal/entity"
	"logfiber-be/internal/pkg/logger"
	"logfiber-be/internal/repository/contract"
	"logfiber-be/pkg/logfilter"
	"logfiber-be/pkg/searchindex"

	"github.com/google/uuid"
)

type IQueryService interface {
	Search(ctx context.Context, projectSlug string, req *dto.SearchLogsRequest) (*dto.SearchLogsResponse, error)
}

type queryService struct {
	projects   contract.ProjectRepository
	logs       contract.LogEventRepository
	index      searchindex.Client // nil when the search index is disabled
	collection string
	log        logger.ILogger
}

func NewQueryService(
	projects contract.ProjectRepository,
	logs contract.LogEventRepository,
	index searchindex.Client,
	collection string,
	log logger.ILogger,
) IQueryService {
	return &queryService{
		projects:   projects,
		logs:       logs,
		index:      index,
		collection: collection,
		log:        log,
	}
}

func (s *queryService) Search(ctx context.Context, projectSlug string, req *dto.SearchLogsRequest) (*dto.SearchLogsResponse, error) {
	project, err := s.projects.FindBySlug(ctx, projectSlug)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.NotFoundf("project %q", projectSlug)
	}

	window, err := logfilter.ParseWindow(req.LookbackTime, req.TimeRange, time.Now())
	if err != nil {
		return nil, apperror.Inputf("%s", err.Error())
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = constant.DefaultPageSize
	}
	if pageSize > constant.MaxPageSize {
		pageSize = constant.MaxPageSize
	}

	query := &searchindex.Query{
		ProjectId:    project.Id.String(),
		Levels:       req.Level,
		Environments: req.Environment,
		Hostnames:    req.Hostname,
		LogType:      req.LogType,
		Window:       window,
		Doc:          req.DocFilter,
		Message:      req.MessageFilter,
		StackTrace:   req.StackTraceFilter,
		Details:      req.DetailsFilter,
		Page:         page,
		PerPage:      pageSize,
	}
	if req.Sort == "asc" {
		query.SortBy = "timestampMS:asc"
	}

	surface, overridden := query.ActiveSurface()
	if overridden {
		// Current client-facing behavior: the winning filter applies silently.
		s.log.Warn("query_service", "multiple phrase filters supplied, lower-priority ones discarded", map[string]interface{}{
			"project": projectSlug,
			"surface": string(surface),
		})
	}

	if s.index == nil {
		return s.searchFallback(ctx, project, query, req.Sort)
	}

	res, err := s.searchIndex(ctx, query, surface)
	if err != nil {
		if errors.Is(err, searchindex.ErrUnavailable) || errors.Is(err, searchindex.ErrNotFound) {
			s.log.Warn("query_service", "Search index unavailable, falling back to primary store", map[string]interface{}{
				"error": err.Error(),
			})
			return s.searchFallback(ctx, project, query, req.Sort)
		}
		return nil, err
	}
	return res, nil
}

func (s *queryService) searchIndex(ctx context.Context, query *searchindex.Query, surface searchindex.Surface) (*dto.SearchLogsResponse, error) {
	params := searchindex.Translate(query)

	result, err := s.index.Search(ctx, s.collection, params)
	if err != nil {
		return nil, err
	}

	filter := query.ActiveFilter()

	// The engine's typo tolerance, stemming and tokenization can admit hits
	// the exact predicate rejects; re-check every hit against the canonical
	// evaluator. The stack-trace surface is always re-checked because its
	// query spans detailString as well.
	verify := filter != nil &&
		(surface == searchindex.SurfaceStackTrace || searchindex.NeedsVerification(filter))

	logs := make([]*dto.LogEventResponse, 0, len(result.Hits))
	removed := 0
	for _, hit := range result.Hits {
		if verify && !hitMatches(hit.Document, surface, filter) {
			removed++
			continue
		}
		logs = append(logs, hitToResponse(hit.Document))
	}

	// Found and the facet counts come from the engine; the prune correction
	// only sees the current page, so a multi-page result can still overcount
	// when later pages hold false positives of their own.
	total := int64(result.Found - removed)
	if total < 0 {
		total = 0
	}

	return &dto.SearchLogsResponse{
		Logs:        logs,
		Total:       total,
		Page:        query.Page,
		PageSize:    query.PerPage,
		LevelCounts: levelCounts(result.FacetCounts),
	}, nil
}

// hitMatches applies the canonical predicate to the hit's real field values,
// using the same surface extraction as the fallback evaluator.
func hitMatches(doc map[string]interface{}, surface searchindex.Surface, filter *logfilter.Filter) bool {
	switch surface {
	case searchindex.SurfaceDoc:
		return logfilter.Evaluate(docString(doc, "message"), *filter) ||
			logfilter.Evaluate(docString(doc, "rawStackTrace"), *filter) ||
			logfilter.Evaluate(docString(doc, "detailString"), *filter)
	case searchindex.SurfaceMessage:
		return logfilter.Evaluate(docString(doc, "message"), *filter)
	case searchindex.SurfaceStackTrace:
		return logfilter.Evaluate(docString(doc, "rawStackTrace"), *filter)
	case searchindex.SurfaceDetails:
		return logfilter.Evaluate(docString(doc, "detailString"), *filter)
	default:
		return true
	}
}

func (s *queryService) searchFallback(ctx context.Context, project *entity.Project, query *searchindex.Query, sort string) (*dto.SearchLogsResponse, error) {
	q := &entity.LogQuery{
		ProjectId:      project.Id,
		Levels:         query.Levels,
		Environments:   query.Environments,
		Hostnames:      query.Hostnames,
		LogType:        query.LogType,
		MinTimestampMS: query.Window.MinTimestampMS,
		MaxTimestampMS: query.Window.MaxTimestampMS,
	}

	all, err := s.logs.FindAll(ctx, q)
	if err != nil {
		return nil, err
	}

	surface, _ := query.ActiveSurface()
	filter := query.ActiveFilter()

	filtered := make([]*entity.LogEvent, 0, len(all))
	for _, ev := range all {
		if filter == nil || eventMatches(ev, surface, filter) {
			filtered = append(filtered, ev)
		}
	}

	// The repository orders newest first; an explicit ascending directive
	// only applies when no phrase filter is active, same as the index path.
	if filter == nil && sort == "asc" {
		for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
			filtered[i], filtered[j] = filtered[j], filtered[i]
		}
	}

	total := int64(len(filtered))
	counts := make(map[string]int)
	for _, ev := range filtered {
		counts[ev.Level]++
	}

	start := (query.Page - 1) * query.PerPage
	end := start + query.PerPage
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	logs := make([]*dto.LogEventResponse, 0, end-start)
	for _, ev := range filtered[start:end] {
		logs = append(logs, LogEventToResponse(ev))
	}

	return &dto.SearchLogsResponse{
		Logs:        logs,
		Total:       total,
		Page:        query.Page,
		PageSize:    query.PerPage,
		LevelCounts: counts,
	}, nil
}

// eventMatches is the fallback-side twin of hitMatches, over the stored
// record instead of the mirrored document.
func eventMatches(ev *entity.LogEvent, surface searchindex.Surface, filter *logfilter.Filter) bool {
	switch surface {
	case searchindex.SurfaceDoc:
		return logfilter.Evaluate(ev.Message, *filter) ||
			logfilter.Evaluate(ev.StackTraceText(), *filter) ||
			logfilter.Evaluate(ev.DetailsText(), *filter)
	case searchindex.SurfaceMessage:
		return logfilter.Evaluate(ev.Message, *filter)
	case searchindex.SurfaceStackTrace:
		return logfilter.Evaluate(ev.StackTraceText(), *filter)
	case searchindex.SurfaceDetails:
		return logfilter.Evaluate(ev.DetailsText(), *filter)
	default:
		return true
	}
}

func hitToResponse(doc map[string]interface{}) *dto.LogEventResponse {
	resp := &dto.LogEventResponse{
		Level:         docString(doc, "level"),
		Environment:   docString(doc, "environment"),
		LogType:       docString(doc, "logType"),
		Message:       docString(doc, "message"),
		RawStackTrace: docString(doc, "rawStackTrace"),
		Hostname:      docString(doc, "hostname"),
		TimestampMS:   docInt64(doc, "timestampMS"),
	}
	if id, err := uuid.Parse(docString(doc, "id")); err == nil {
		resp.Id = id
	}
	if pid, err := uuid.Parse(docString(doc, "projectId")); err == nil {
		resp.ProjectId = pid
	}
	if ds := docString(doc, "detailString"); ds != "" {
		var details map[string]interface{}
		if err := json.Unmarshal([]byte(ds), &details); err == nil {
			resp.Details = details
		}
	}
	return resp
}

func levelCounts(facets []searchindex.Facet) map[string]int {
	for _, f := range facets {
		if f.FieldName != "level" {
			continue
		}
		counts := make(map[string]int, len(f.Counts))
		for _, c := range f.Counts {
			counts[c.Value] = c.Count
		}
		return counts
	}
	return nil
}

func docString(doc map[string]interface{}, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}

func docInt64(doc map[string]interface{}, key string) int64 {
	switch v := doc[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
	}
	return 0
}
