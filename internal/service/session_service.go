package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/manish-1011/KisanSaathi/internal/constant"
	"github.com/manish-1011/KisanSaathi/internal/dto"
	"github.com/manish-1011/KisanSaathi/internal/entity"
	"github.com/manish-1011/KisanSaathi/internal/pkg/serverutils"
	"github.com/manish-1011/KisanSaathi/internal/repository/contract"
)

type ISessionService interface {
	Create(ctx context.Context, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	Rename(ctx context.Context, userEmail, sessionId, newName string) error
	Delete(ctx context.Context, userEmail, sessionId string) error
}

type sessionService struct {
	turns contract.TurnRepository
	ist   *time.Location
}

func NewSessionService(turns contract.TurnRepository) ISessionService {
	return &sessionService{
		turns: turns,
		ist:   loadIST(),
	}
}

// Create inserts the session's bootstrap row: default title, no message.
func (s *sessionService) Create(ctx context.Context, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	userEmail := strings.TrimSpace(request.UserEmail)
	if userEmail == "" {
		return nil, serverutils.BadRequest("user_email is required")
	}

	sessionId := uuid.NewString()
	now := time.Now().UTC()
	defaultTitle := constant.DefaultSessionTitle

	turn := &entity.Turn{
		SessionId:   sessionId,
		UserEmail:   userEmail,
		SessionName: &defaultTitle,
		CreatedTime: now,
	}
	if err := s.turns.Create(ctx, turn); err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{
		UserEmail:   userEmail,
		SessionId:   sessionId,
		CreatedTime: now.In(s.ist).Format(time.RFC3339),
	}, nil
}

func (s *sessionService) Rename(ctx context.Context, userEmail, sessionId, newName string) error {
	userEmail = strings.TrimSpace(userEmail)
	sessionId = strings.TrimSpace(sessionId)
	newName = strings.TrimSpace(newName)
	if userEmail == "" || sessionId == "" || newName == "" {
		return serverutils.BadRequest("user_email, session_id, session_name required")
	}

	affected, err := s.turns.RenameSession(ctx, sessionId, userEmail, newName)
	if err != nil {
		return err
	}
	if affected == 0 {
		return serverutils.NotFound("Session not found")
	}
	return nil
}

func (s *sessionService) Delete(ctx context.Context, userEmail, sessionId string) error {
	userEmail = strings.TrimSpace(userEmail)
	sessionId = strings.TrimSpace(sessionId)
	if userEmail == "" || sessionId == "" {
		return serverutils.BadRequest("user_email and session_id required")
	}

	affected, err := s.turns.DeleteSession(ctx, sessionId, userEmail)
	if err != nil {
		return err
	}
	if affected == 0 {
		return serverutils.NotFound("Session not found")
	}
	return nil
}
