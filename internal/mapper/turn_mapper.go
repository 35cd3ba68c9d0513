package mapper

import (
	"github.com/manish-1011/KisanSaathi/internal/entity"
	"github.com/manish-1011/KisanSaathi/internal/model"
)

type TurnMapper struct{}

func NewTurnMapper() *TurnMapper {
	return &TurnMapper{}
}

func (m *TurnMapper) ToEntity(t *model.Turn) *entity.Turn {
	if t == nil {
		return nil
	}
	return &entity.Turn{
		Id:           t.Id,
		MessageId:    t.MessageId,
		SessionId:    t.SessionId,
		UserEmail:    t.UserEmail,
		SessionName:  t.SessionName,
		UserQueryRaw: t.UserQueryRaw,
		UserQueryEn:  t.UserQueryEn,
		BotMessage:   t.BotMessage,
		CreatedTime:  t.CreatedTime,
		EndTime:      t.EndTime,
	}
}

func (m *TurnMapper) ToModel(t *entity.Turn) *model.Turn {
	if t == nil {
		return nil
	}
	return &model.Turn{
		Id:           t.Id,
		MessageId:    t.MessageId,
		SessionId:    t.SessionId,
		UserEmail:    t.UserEmail,
		SessionName:  t.SessionName,
		UserQueryRaw: t.UserQueryRaw,
		UserQueryEn:  t.UserQueryEn,
		BotMessage:   t.BotMessage,
		CreatedTime:  t.CreatedTime,
		EndTime:      t.EndTime,
	}
}

func (m *TurnMapper) ToEntities(models []*model.Turn) []*entity.Turn {
	entities := make([]*entity.Turn, len(models))
	for i, t := range models {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
