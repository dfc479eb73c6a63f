package implementation

import (
	"context"
	"errors"

	"logfiber-be/internal/entity"
	"logfiber-be/internal/mapper"
	"logfiber-be/internal/model"
	"logfiber-be/internal/repository/contract"
	"logfiber-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LogEventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LogEventMapper
}

func NewLogEventRepository(db *gorm.DB) contract.LogEventRepository {
	return &LogEventRepositoryImpl{
		db:     db,
		mapper: mapper.NewLogEventMapper(),
	}
}

func (r *LogEventRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func querySpecs(q *entity.LogQuery) []specification.Specification {
	return []specification.Specification{
		specification.ByProjectID{ProjectID: q.ProjectId},
		specification.LevelIn{Levels: q.Levels},
		specification.EnvironmentIn{Environments: q.Environments},
		specification.HostnameIn{Hostnames: q.Hostnames},
		specification.ByLogType{LogType: q.LogType},
		specification.TimestampRange{MinMS: q.MinTimestampMS, MaxMS: q.MaxTimestampMS},
	}
}

func (r *LogEventRepositoryImpl) Create(ctx context.Context, ev *entity.LogEvent) error {
	m := r.mapper.ToModel(ev)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*ev = *r.mapper.ToEntity(m)
	return nil
}

func (r *LogEventRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.LogEvent, error) {
	var m model.LogEvent
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LogEventRepositoryImpl) FindPage(ctx context.Context, q *entity.LogQuery) ([]*entity.LogEvent, int64, error) {
	specs := querySpecs(q)

	var total int64
	countQuery := r.applySpecifications(r.db.WithContext(ctx).Model(&model.LogEvent{}), specs...)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	specs = append(specs,
		specification.OrderBy{Field: "timestamp_ms", Desc: true},
		specification.Pagination{Limit: q.PageSize, Offset: (q.Page - 1) * q.PageSize},
	)

	var models []*model.LogEvent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, err
	}
	return r.mapper.ToEntities(models), total, nil
}

func (r *LogEventRepositoryImpl) FindAll(ctx context.Context, q *entity.LogQuery) ([]*entity.LogEvent, error) {
	specs := append(querySpecs(q), specification.OrderBy{Field: "timestamp_ms", Desc: true})

	var models []*model.LogEvent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *LogEventRepositoryImpl) FindIds(ctx context.Context, q *entity.LogQuery) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.LogEvent{}), querySpecs(q)...)
	if err := query.Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *LogEventRepositoryImpl) DeleteByIds(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.LogEvent{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
