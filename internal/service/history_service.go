package service

import (
	"context"
	"strings"
	"time"

	"github.com/manish-1011/KisanSaathi/internal/constant"
	"github.com/manish-1011/KisanSaathi/internal/dto"
	"github.com/manish-1011/KisanSaathi/internal/pkg/logger"
	"github.com/manish-1011/KisanSaathi/internal/pkg/serverutils"
	"github.com/manish-1011/KisanSaathi/internal/repository/contract"
	"github.com/manish-1011/KisanSaathi/internal/repository/specification"
	"github.com/manish-1011/KisanSaathi/pkg/translate"
)

// BatchTranslator is the slice of the translation client history needs.
type BatchTranslator interface {
	TranslateMany(ctx context.Context, texts []string, target, source string) translate.BatchResult
}

type IHistoryService interface {
	SessionChat(ctx context.Context, request *dto.HistoryRequest) ([]*dto.TurnItem, error)
	ListSessions(ctx context.Context, request *dto.HistoryRequest) (*dto.SessionBuckets, error)
}

// historyService rebuilds past turns and session listings for display.
// Reads only; localization failures fall back to English text.
type historyService struct {
	turns contract.TurnRepository
	users contract.UserProfileRepository
	tr    BatchTranslator
	log   logger.ILogger
	ist   *time.Location
}

func NewHistoryService(
	turns contract.TurnRepository,
	users contract.UserProfileRepository,
	tr BatchTranslator,
	log logger.ILogger,
) IHistoryService {
	if log == nil {
		log = logger.NoopLogger{}
	}
	return &historyService{
		turns: turns,
		users: users,
		tr:    tr,
		log:   log,
		ist:   loadIST(),
	}
}

func loadIST() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+1800)
}

func (s *historyService) SessionChat(ctx context.Context, request *dto.HistoryRequest) ([]*dto.TurnItem, error) {
	userEmail := strings.TrimSpace(request.UserEmail)
	sessionId := strings.TrimSpace(request.SessionId)
	if userEmail == "" || sessionId == "" {
		return nil, serverutils.BadRequest("user_email and session_id are required")
	}

	targetLang := s.displayLanguage(ctx, request.Language, userEmail)

	turns, err := s.turns.FindAll(ctx,
		specification.ByUserEmail{UserEmail: userEmail},
		specification.BySessionId{SessionId: sessionId},
		specification.MessageIdPresent{},
		specification.WithContent{},
		specification.OrderBy{Field: "created_time"},
	)
	if err != nil {
		return nil, err
	}

	userTexts := make([]string, len(turns))
	botTexts := make([]string, len(turns))
	for i, turn := range turns {
		if turn.UserQueryEn != nil && *turn.UserQueryEn != "" {
			userTexts[i] = *turn.UserQueryEn
		} else if turn.UserQueryRaw != nil {
			userTexts[i] = *turn.UserQueryRaw
		}
		if turn.BotMessage != nil {
			botTexts[i] = *turn.BotMessage
		}
	}

	if targetLang != "en" && len(turns) > 0 {
		userTexts = s.tr.TranslateMany(ctx, userTexts, targetLang, "en").Texts
		botTexts = s.tr.TranslateMany(ctx, botTexts, targetLang, "en").Texts
	}

	items := make([]*dto.TurnItem, len(turns))
	for i, turn := range turns {
		messageId := ""
		if turn.MessageId != nil {
			messageId = *turn.MessageId
		}
		items[i] = &dto.TurnItem{
			MessageId:   messageId,
			UserQuery:   userTexts[i],
			BotMessage:  botTexts[i],
			CreatedTime: s.istTimestamp(&turn.CreatedTime),
			EndTime:     s.istTimestamp(turn.EndTime),
		}
	}
	return items, nil
}

func (s *historyService) ListSessions(ctx context.Context, request *dto.HistoryRequest) (*dto.SessionBuckets, error) {
	userEmail := strings.TrimSpace(request.UserEmail)
	if userEmail == "" {
		return nil, serverutils.BadRequest("user_email is required")
	}

	limit := request.Limit
	if limit <= 0 {
		limit = 25
	}
	offset := request.Offset
	if offset < 0 {
		offset = 0
	}

	targetLang := s.displayLanguage(ctx, request.Language, userEmail)

	summaries, err := s.turns.ListSessions(ctx, userEmail, limit, offset)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(summaries))
	for i, summary := range summaries {
		names[i] = summary.SessionName
	}
	if targetLang != "en" && len(names) > 0 {
		names = s.tr.TranslateMany(ctx, names, targetLang, "").Texts
	}

	buckets := &dto.SessionBuckets{
		Today:     []dto.SessionItem{},
		Yesterday: []dto.SessionItem{},
		PastWeek:  []dto.SessionItem{},
		PastMonth: []dto.SessionItem{},
		Older:     []dto.SessionItem{},
	}

	now := time.Now().In(s.ist)
	for i, summary := range summaries {
		lastActivity := summary.LastActivity.In(s.ist)
		item := dto.SessionItem{
			SessionId:   summary.SessionId,
			SessionName: names[i],
			CreatedTime: lastActivity.Format(time.RFC3339),
		}

		switch BucketFor(civilDaysBetween(lastActivity, now)) {
		case constant.BucketToday:
			buckets.Today = append(buckets.Today, item)
		case constant.BucketYesterday:
			buckets.Yesterday = append(buckets.Yesterday, item)
		case constant.BucketPastWeek:
			buckets.PastWeek = append(buckets.PastWeek, item)
		case constant.BucketPastMonth:
			buckets.PastMonth = append(buckets.PastMonth, item)
		default:
			buckets.Older = append(buckets.Older, item)
		}
	}
	return buckets, nil
}

// displayLanguage resolves the target display language: explicit request
// field first, then the stored profile, then English.
func (s *historyService) displayLanguage(ctx context.Context, requested, userEmail string) string {
	if tag := translate.NormalizeTag(requested); tag != "" {
		return tag
	}

	profile, err := s.users.Find(ctx, userEmail)
	if err != nil {
		s.log.Warn("history", "profile lookup failed, defaulting to English", map[string]interface{}{
			"user_email": userEmail,
			"error":      err.Error(),
		})
		return "en"
	}
	if profile == nil {
		return "en"
	}
	if tag := translate.NormalizeTag(profile.Language); tag != "" {
		return tag
	}
	return "en"
}

func (s *historyService) istTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.In(s.ist).Format(time.RFC3339)
	return &formatted
}

// civilDaysBetween is the calendar-day difference between two instants in
// the same civil time zone. Clock time does not matter, only the date.
func civilDaysBetween(earlier, later time.Time) int {
	ey, em, ed := earlier.Date()
	ly, lm, ld := later.Date()
	e := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	l := time.Date(ly, lm, ld, 0, 0, 0, 0, time.UTC)
	return int(l.Sub(e).Hours() / 24)
}

// BucketFor maps a calendar-day difference onto its recency bucket.
func BucketFor(diffDays int) string {
	switch {
	case diffDays <= 0:
		return constant.BucketToday
	case diffDays == 1:
		return constant.BucketYesterday
	case diffDays <= 7:
		return constant.BucketPastWeek
	case diffDays <= 30:
		return constant.BucketPastMonth
	default:
		return constant.BucketOlder
	}
}
