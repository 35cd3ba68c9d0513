package mapper

import (
	"github.com/manish-1011/KisanSaathi/internal/entity"
	"github.com/manish-1011/KisanSaathi/internal/model"
)

type FeedbackMapper struct{}

func NewFeedbackMapper() *FeedbackMapper {
	return &FeedbackMapper{}
}

func (m *FeedbackMapper) ToModel(f *entity.Feedback) *model.Feedback {
	if f == nil {
		return nil
	}
	return &model.Feedback{
		FeedbackId:  f.FeedbackId,
		SessionId:   f.SessionId,
		UserEmail:   f.UserEmail,
		Action:      string(f.Action),
		Comment:     f.Comment,
		CreatedTime: f.CreatedTime,
	}
}

func (m *FeedbackMapper) ToEntity(f *model.Feedback) *entity.Feedback {
	if f == nil {
		return nil
	}
	return &entity.Feedback{
		FeedbackId:  f.FeedbackId,
		SessionId:   f.SessionId,
		UserEmail:   f.UserEmail,
		Action:      entity.FeedbackAction(f.Action),
		Comment:     f.Comment,
		CreatedTime: f.CreatedTime,
	}
}
