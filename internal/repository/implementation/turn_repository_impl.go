package implementation

import (
	"context"
	"errors"
	"time"

	"github.com/manish-1011/KisanSaathi/internal/constant"
	"github.com/manish-1011/KisanSaathi/internal/entity"
	"github.com/manish-1011/KisanSaathi/internal/mapper"
	"github.com/manish-1011/KisanSaathi/internal/model"
	"github.com/manish-1011/KisanSaathi/internal/repository/contract"
	"github.com/manish-1011/KisanSaathi/internal/repository/specification"

	"gorm.io/gorm"
)

type TurnRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TurnMapper
}

func NewTurnRepository(db *gorm.DB) contract.TurnRepository {
	return &TurnRepositoryImpl{
		db:     db,
		mapper: mapper.NewTurnMapper(),
	}
}

func (r *TurnRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TurnRepositoryImpl) Create(ctx context.Context, turn *entity.Turn) error {
	m := r.mapper.ToModel(turn)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*turn = *r.mapper.ToEntity(m)
	return nil
}

func (r *TurnRepositoryImpl) SetReply(ctx context.Context, messageId, sessionId, userEmail, botMessage string, endTime time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Turn{}).
		Where("message_id = ? AND session_id = ? AND user_email = ?", messageId, sessionId, userEmail).
		Updates(map[string]interface{}{
			"bot_message": botMessage,
			"end_time":    endTime,
		}).Error
}

func (r *TurnRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Turn, error) {
	var m model.Turn
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TurnRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Turn, error) {
	var models []*model.Turn
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TurnRepositoryImpl) RenameSession(ctx context.Context, sessionId, userEmail, name string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Turn{}).
		Where("session_id = ? AND user_email = ?", sessionId, userEmail).
		Update("session_name", name)
	return res.RowsAffected, res.Error
}

func (r *TurnRepositoryImpl) DeleteSession(ctx context.Context, sessionId, userEmail string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("session_id = ? AND user_email = ?", sessionId, userEmail).
		Delete(&model.Turn{})
	return res.RowsAffected, res.Error
}

func (r *TurnRepositoryImpl) SessionExists(ctx context.Context, sessionId, userEmail string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Turn{}).
		Where("session_id = ? AND user_email = ?", sessionId, userEmail).
		Count(&count).Error
	return count > 0, err
}

func (r *TurnRepositoryImpl) ListSessions(ctx context.Context, userEmail string, limit, offset int) ([]*entity.SessionSummary, error) {
	type row struct {
		SessionId    string
		SessionName  *string
		LastActivity time.Time
	}

	var rows []row
	err := r.db.WithContext(ctx).Model(&model.Turn{}).
		Select("session_id, session_name, MAX(created_time) AS last_activity").
		Where("user_email = ?", userEmail).
		Group("session_id, session_name").
		Order("last_activity DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]*entity.SessionSummary, len(rows))
	for i, rec := range rows {
		name := constant.FallbackSessionName
		if rec.SessionName != nil && *rec.SessionName != "" {
			name = *rec.SessionName
		}
		summaries[i] = &entity.SessionSummary{
			SessionId:    rec.SessionId,
			SessionName:  name,
			LastActivity: rec.LastActivity,
		}
	}
	return summaries, nil
}
