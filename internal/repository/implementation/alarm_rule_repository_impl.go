package implementation

import (
	"context"

	"logfiber-be/internal/entity"
	"logfiber-be/internal/mapper"
	"logfiber-be/internal/model"
	"logfiber-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AlarmRuleRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AlarmRuleMapper
}

func NewAlarmRuleRepository(db *gorm.DB) contract.AlarmRuleRepository {
	return &AlarmRuleRepositoryImpl{
		db:     db,
		mapper: mapper.NewAlarmRuleMapper(),
	}
}

func (r *AlarmRuleRepositoryImpl) Create(ctx context.Context, rule *entity.AlarmRule) error {
	m := r.mapper.ToModel(rule)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*rule = *r.mapper.ToEntity(m)
	return nil
}

func (r *AlarmRuleRepositoryImpl) FindAllByProjectId(ctx context.Context, projectId uuid.UUID) ([]*entity.AlarmRule, error) {
	var models []*model.AlarmRule
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectId).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AlarmRuleRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.AlarmRule{}, "id = ?", id).Error
}
