package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/manish-1011/KisanSaathi/internal/dto"
	"github.com/manish-1011/KisanSaathi/internal/entity"
	"github.com/manish-1011/KisanSaathi/internal/pkg/serverutils"
	"github.com/manish-1011/KisanSaathi/internal/repository/contract"
)

type IFeedbackService interface {
	Submit(ctx context.Context, request *dto.FeedbackRequest) (*dto.FeedbackResponse, error)
}

type feedbackService struct {
	feedback contract.FeedbackRepository
	turns    contract.TurnRepository
	ist      *time.Location
}

func NewFeedbackService(feedback contract.FeedbackRepository, turns contract.TurnRepository) IFeedbackService {
	return &feedbackService{
		feedback: feedback,
		turns:    turns,
		ist:      loadIST(),
	}
}

func (s *feedbackService) Submit(ctx context.Context, request *dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	userEmail := strings.TrimSpace(request.UserEmail)
	sessionId := strings.TrimSpace(request.SessionId)
	action := strings.ToLower(strings.TrimSpace(request.Action))

	if userEmail == "" || sessionId == "" || action == "" {
		return nil, serverutils.BadRequest("user_email, session_id, action are required")
	}
	if action != string(entity.FeedbackActionUp) && action != string(entity.FeedbackActionDown) {
		return nil, serverutils.BadRequest("action must be 'up' or 'down'")
	}

	exists, err := s.turns.SessionExists(ctx, sessionId, userEmail)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, serverutils.NotFound("Session not found for this user")
	}

	feedback := &entity.Feedback{
		FeedbackId:  uuid.NewString(),
		SessionId:   sessionId,
		UserEmail:   userEmail,
		Action:      entity.FeedbackAction(action),
		Comment:     request.Comment,
		CreatedTime: time.Now().UTC(),
	}
	if err := s.feedback.Create(ctx, feedback); err != nil {
		return nil, err
	}

	return &dto.FeedbackResponse{
		FeedbackId:  feedback.FeedbackId,
		SessionId:   feedback.SessionId,
		UserEmail:   feedback.UserEmail,
		Action:      string(feedback.Action),
		Comment:     feedback.Comment,
		CreatedTime: feedback.CreatedTime.In(s.ist).Format(time.RFC3339),
	}, nil
}
