package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/manish-1011/KisanSaathi/internal/constant"
	"github.com/manish-1011/KisanSaathi/internal/dto"
	"github.com/manish-1011/KisanSaathi/internal/entity"
	"github.com/manish-1011/KisanSaathi/internal/pkg/logger"
	"github.com/manish-1011/KisanSaathi/internal/pkg/serverutils"
	"github.com/manish-1011/KisanSaathi/internal/repository/contract"
	"github.com/manish-1011/KisanSaathi/internal/repository/specification"
	"github.com/manish-1011/KisanSaathi/pkg/downstream"
	"github.com/manish-1011/KisanSaathi/pkg/relevance"
	"github.com/manish-1011/KisanSaathi/pkg/translate"
)

// Translator is the slice of the translation client the orchestrator needs.
type Translator interface {
	TranslateOne(ctx context.Context, text, target, source string) translate.Result
	Detect(ctx context.Context, text string) string
}

// Normalizer produces the canonical English form of a user message.
type Normalizer interface {
	ToEnglish(ctx context.Context, text, uiLang string) string
}

// RelevanceJudge decides whether prior turns help answer the current query.
type RelevanceJudge interface {
	IsRelevant(ctx context.Context, query string, turns []relevance.TurnPair) relevance.Verdict
}

// TitleMaker derives a short session title from a message.
type TitleMaker interface {
	MakeTitle(ctx context.Context, userText string) string
}

// TitleClassifier decides whether a message deserves to name the session.
type TitleClassifier func(text string) bool

// Dispatcher sends an outgoing query to the answering service.
type Dispatcher interface {
	Dispatch(ctx context.Context, req downstream.Request) downstream.Reply
}

type IChatService interface {
	Send(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
}

// chatService runs one inbound message through the full turn pipeline:
// title check, normalization, persistence, relevance gating, downstream
// dispatch, reply persistence, and localization. Every stage between input
// validation and the final response degrades instead of aborting.
type chatService struct {
	turns        contract.TurnRepository
	users        contract.UserProfileRepository
	translator   Translator
	normalizer   Normalizer
	judge        RelevanceJudge
	titles       TitleMaker
	isMeaningful TitleClassifier
	dispatcher   Dispatcher
	log          logger.ILogger
}

func NewChatService(
	turns contract.TurnRepository,
	users contract.UserProfileRepository,
	translator Translator,
	normalizer Normalizer,
	judge RelevanceJudge,
	titles TitleMaker,
	isMeaningful TitleClassifier,
	dispatcher Dispatcher,
	log logger.ILogger,
) IChatService {
	if log == nil {
		log = logger.NoopLogger{}
	}
	return &chatService{
		turns:        turns,
		users:        users,
		translator:   translator,
		normalizer:   normalizer,
		judge:        judge,
		titles:       titles,
		isMeaningful: isMeaningful,
		dispatcher:   dispatcher,
		log:          log,
	}
}

func (s *chatService) Send(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	started := time.Now()

	sessionId := strings.TrimSpace(request.SessionId)
	userEmail := strings.TrimSpace(request.UserEmail)
	userMsg := strings.TrimSpace(request.UserMsg)
	if sessionId == "" || userEmail == "" || userMsg == "" {
		return nil, serverutils.BadRequest("session_id, user_email, user_msg are required")
	}

	currentTitle, err := s.currentSessionTitle(ctx, sessionId, userEmail)
	if err != nil {
		return nil, err
	}

	profile := s.userProfile(ctx, userEmail)
	uiLanguage := translate.NormalizeTag(profile.Language)
	if uiLanguage == "" {
		uiLanguage = "en"
	}

	lastTurns, err := s.lastTurnPairs(ctx, sessionId, constant.LastTurnWindow)
	if err != nil {
		return nil, err
	}

	// Best-effort, observability only.
	inputLang := s.translator.Detect(ctx, userMsg)
	if inputLang == "" {
		inputLang = "und"
	}

	userMsgEn := s.normalizer.ToEnglish(ctx, userMsg, uiLanguage)

	currentTitle, renamed := s.maybeRenameSession(ctx, sessionId, userEmail, currentTitle, userMsg)

	// Durability first: the user's message is persisted before anything
	// downstream can fail.
	messageId := uuid.NewString()
	now := time.Now().UTC()
	turn := &entity.Turn{
		MessageId:    &messageId,
		SessionId:    sessionId,
		UserEmail:    userEmail,
		SessionName:  &currentTitle,
		UserQueryRaw: &userMsg,
		UserQueryEn:  &userMsgEn,
		CreatedTime:  now,
	}
	if err := s.turns.Create(ctx, turn); err != nil {
		return nil, err
	}

	verdict := s.judge.IsRelevant(ctx, userMsgEn, lastTurns)
	outgoingQuery := userMsgEn
	if verdict.Relevant {
		outgoingQuery = relevance.BuildEnrichedQuery(userMsgEn, lastTurns)
	}

	reply := s.dispatcher.Dispatch(ctx, downstream.Request{
		UserEmail: userEmail,
		SessionId: sessionId,
		MessageId: messageId,
		UserQuery: outgoingQuery,
		Meta: downstream.Meta{
			Language: uiLanguage,
			Mode:     string(profile.Mode),
			Pincode:  profile.Pincode,
		},
	})

	if err := s.turns.SetReply(ctx, messageId, sessionId, userEmail, reply.BotReply, reply.EndTime); err != nil {
		return nil, err
	}

	botMsgUi := reply.BotReply
	sessionNameUi := currentTitle
	if uiLanguage != "en" {
		botMsgUi = s.translator.TranslateOne(ctx, reply.BotReply, uiLanguage, "en").Text
		sessionNameUi = s.translator.TranslateOne(ctx, currentTitle, uiLanguage, "en").Text
	}

	s.log.Info("chat", "turn completed", map[string]interface{}{
		"session_id":     sessionId,
		"message_id":     messageId,
		"input_language": inputLang,
		"ui_language":    uiLanguage,
		"relevance_used": verdict.Relevant,
		"degraded":       reply.Degraded,
		"latency_ms":     time.Since(started).Milliseconds(),
	})

	return &dto.ChatResponse{
		MessageId:     messageId,
		SessionId:     sessionId,
		BotMsg:        botMsgUi,
		BotMsgEn:      reply.BotReply,
		UserEmail:     userEmail,
		SessionName:   currentTitle,
		SessionNameUi: sessionNameUi,
		Renamed:       renamed,
		RelevanceUsed: verdict.Relevant,
	}, nil
}

// currentSessionTitle reads the title off the session's newest row. A
// missing session is a hard 404; a NULL title is repaired to the default.
func (s *chatService) currentSessionTitle(ctx context.Context, sessionId, userEmail string) (string, error) {
	latest, err := s.turns.FindOne(ctx,
		specification.BySessionId{SessionId: sessionId},
		specification.ByUserEmail{UserEmail: userEmail},
		specification.OrderBy{Field: "created_time", Desc: true},
	)
	if err != nil {
		return "", err
	}
	if latest == nil {
		return "", serverutils.NotFound("Session not found for this user")
	}

	if latest.SessionName == nil || strings.TrimSpace(*latest.SessionName) == "" {
		if _, err := s.turns.RenameSession(ctx, sessionId, userEmail, constant.DefaultSessionTitle); err != nil {
			return "", err
		}
		return constant.DefaultSessionTitle, nil
	}
	return *latest.SessionName, nil
}

func (s *chatService) userProfile(ctx context.Context, userEmail string) *entity.UserProfile {
	profile, err := s.users.Find(ctx, userEmail)
	if err != nil {
		s.log.Warn("chat", "profile lookup failed, using defaults", map[string]interface{}{
			"user_email": userEmail,
			"error":      err.Error(),
		})
		return entity.DefaultUserProfile(userEmail)
	}
	if profile == nil {
		return entity.DefaultUserProfile(userEmail)
	}
	return profile
}

// lastTurnPairs loads the session's most recent completed turns,
// oldest first.
func (s *chatService) lastTurnPairs(ctx context.Context, sessionId string, limit int) ([]relevance.TurnPair, error) {
	turns, err := s.turns.FindAll(ctx,
		specification.BySessionId{SessionId: sessionId},
		specification.MessageIdPresent{},
		specification.OrderBy{Field: "created_time", Desc: true},
		specification.Limit{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	pairs := make([]relevance.TurnPair, 0, len(turns))
	for i := len(turns) - 1; i >= 0; i-- {
		pair := relevance.TurnPair{}
		if turns[i].UserQueryEn != nil {
			pair.User = *turns[i].UserQueryEn
		}
		if turns[i].BotMessage != nil {
			pair.Bot = *turns[i].BotMessage
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// maybeRenameSession applies the once-per-session automatic rename. All
// failures are swallowed: a title is never worth failing a turn.
func (s *chatService) maybeRenameSession(ctx context.Context, sessionId, userEmail, currentTitle, userMsg string) (string, bool) {
	if !isDefaultTitle(currentTitle) || !s.isMeaningful(userMsg) {
		return currentTitle, false
	}

	newTitle := strings.TrimSpace(s.titles.MakeTitle(ctx, userMsg))
	if newTitle == "" || isDiscardedTitle(newTitle) {
		return currentTitle, false
	}

	if _, err := s.turns.RenameSession(ctx, sessionId, userEmail, newTitle); err != nil {
		s.log.Warn("chat", "session rename failed, keeping default title", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return currentTitle, false
	}
	return newTitle, true
}

func isDefaultTitle(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "new chat", "new session":
		return true
	}
	return false
}

func isDiscardedTitle(name string) bool {
	switch strings.ToLower(name) {
	case "new chat", "new session", "untitled":
		return true
	}
	return false
}
