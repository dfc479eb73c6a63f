package service

import (
	"context"
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
)

type IPurgeService interface {
	Purge(ctx context.Context, projectSlug string, req *dto.PurgeLogsRequest) (*dto.PurgeLogsResponse, error)
}

type purgeService struct {
	projects   contract.ProjectRepository
	logs       contract.LogEventRepository
	index      searchindex.Client // nil when the search index is disabled
	collection string
	log        logger.ILogger
}

func NewPurgeService(
	projects contract.ProjectRepository,
	logs contract.LogEventRepository,
	index searchindex.Client,
	collection string,
	log logger.ILogger,
) IPurgeService {
	return &purgeService{
		projects:   projects,
		logs:       logs,
		index:      index,
		collection: collection,
		log:        log,
	}
}

// Purge deletes matching records from the primary store in bounded batches,
// then mirrors the deletion into the search index best-effort. Only the
// primary-store count is reported; a mirror failure never fails the purge.
// Re-running with the same filters is safe: deleting an already-deleted
// record is a no-op.
func (s *purgeService) Purge(ctx context.Context, projectSlug string, req *dto.PurgeLogsRequest) (*dto.PurgeLogsResponse, error) {
	project, err := s.projects.FindBySlug(ctx, projectSlug)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.NotFoundf("project %q", projectSlug)
	}

	// A lookback resolves to a max bound: purge removes logs at or older
	// than the given age.
	window, err := logfilter.ParseWindow(req.LookbackTime, req.TimeRange, time.Now())
	if err != nil {
		return nil, apperror.Inputf("%s", err.Error())
	}

	q := &entity.LogQuery{
		ProjectId:      project.Id,
		MinTimestampMS: window.MinTimestampMS,
		MaxTimestampMS: window.MaxTimestampMS,
	}
	if req.Level != "" {
		q.Levels = []string{req.Level}
	}
	if req.Environment != "" {
		q.Environments = []string{req.Environment}
	}

	deleted, err := s.deletePrimary(ctx, q)
	if err != nil {
		return nil, err
	}

	if s.index != nil {
		s.deleteMirror(ctx, q, window)
	}

	return &dto.PurgeLogsResponse{DeletedCount: deleted}, nil
}

// deletePrimary is the authoritative phase; it must complete or fail loudly
// before any mirror cleanup is attempted.
func (s *purgeService) deletePrimary(ctx context.Context, q *entity.LogQuery) (int64, error) {
	ids, err := s.logs.FindIds(ctx, q)
	if err != nil {
		return 0, err
	}

	var deleted int64
	for start := 0; start < len(ids); start += constant.DeleteBatchSize {
		end := start + constant.DeleteBatchSize
		if end > len(ids) {
			end = len(ids)
		}
		n, err := s.logs.DeleteByIds(ctx, ids[start:end])
		if err != nil {
			return deleted, err
		}
		deleted += n
	}
	return deleted, nil
}

// deleteMirror sweeps the search index for the same logical filter in pages
// and deletes each document individually. "Not found" means the mirror is
// already clean for that id; any other per-document failure is logged and
// skipped.
func (s *purgeService) deleteMirror(ctx context.Context, q *entity.LogQuery, window logfilter.TimeWindow) {
	query := &searchindex.Query{
		ProjectId:    q.ProjectId.String(),
		Levels:       q.Levels,
		Environments: q.Environments,
		Window:       window,
		Page:         1,
		PerPage:      constant.MirrorPageSize,
	}
	params := searchindex.Translate(query)

	// Pass cap guards against an index that acknowledges deletes but keeps
	// serving stale pages.
	const maxPasses = 10000

	for pass := 0; pass < maxPasses; pass++ {
		result, err := s.index.Search(ctx, s.collection, params)
		if err != nil {
			s.log.Warn("purge_service", "Mirror cleanup query failed", map[string]interface{}{
				"error": err.Error(),
			})
			return
		}
		if len(result.Hits) == 0 {
			return
		}

		progressed := false
		for _, hit := range result.Hits {
			id, ok := hit.Document["id"].(string)
			if !ok || id == "" {
				continue
			}
			err := s.index.DeleteDocument(ctx, s.collection, id)
			if errors.Is(err, searchindex.ErrNotFound) {
				// Already gone; mirror cleanup is idempotent.
				progressed = true
				continue
			}
			if err != nil {
				s.log.Warn("purge_service", "Mirror document delete failed", map[string]interface{}{
					"documentId": id,
					"error":      err.Error(),
				})
				continue
			}
			progressed = true
		}

		// Every remaining hit failed to delete; stop instead of spinning.
		if !progressed {
			return
		}
	}
}
