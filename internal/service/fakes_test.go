package service

import (
	"context"
	"time"

	"github.com/manish-1011/KisanSaathi/internal/entity"
	"github.com/manish-1011/KisanSaathi/internal/repository/contract"
	"github.com/manish-1011/KisanSaathi/internal/repository/specification"
	"github.com/manish-1011/KisanSaathi/pkg/downstream"
	"github.com/manish-1011/KisanSaathi/pkg/relevance"
	"github.com/manish-1011/KisanSaathi/pkg/translate"
)

// opLog records cross-dependency call order so tests can assert sequencing,
// e.g. that a turn is persisted before it is dispatched.
type opLog struct {
	ops []string
}

func (l *opLog) add(op string) {
	l.ops = append(l.ops, op)
}

type setReplyCall struct {
	messageId  string
	sessionId  string
	userEmail  string
	botMessage string
	endTime    time.Time
}

type fakeTurnRepo struct {
	log *opLog

	latest    *entity.Turn
	all       []*entity.Turn
	summaries []*entity.SessionSummary
	exists    bool

	findOneErr error
	createErr  error
	renameErr  error

	created     []*entity.Turn
	setReplies  []setReplyCall
	renames     []string
	renameRows  int64
	deletedRows int64
}

func (f *fakeTurnRepo) Create(ctx context.Context, turn *entity.Turn) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.log != nil {
		f.log.add("create")
	}
	f.created = append(f.created, turn)
	return nil
}

func (f *fakeTurnRepo) SetReply(ctx context.Context, messageId, sessionId, userEmail, botMessage string, endTime time.Time) error {
	if f.log != nil {
		f.log.add("setReply")
	}
	f.setReplies = append(f.setReplies, setReplyCall{messageId, sessionId, userEmail, botMessage, endTime})
	return nil
}

func (f *fakeTurnRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Turn, error) {
	if f.findOneErr != nil {
		return nil, f.findOneErr
	}
	return f.latest, nil
}

func (f *fakeTurnRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Turn, error) {
	return f.all, nil
}

func (f *fakeTurnRepo) RenameSession(ctx context.Context, sessionId, userEmail, name string) (int64, error) {
	if f.renameErr != nil {
		return 0, f.renameErr
	}
	if f.log != nil {
		f.log.add("rename")
	}
	f.renames = append(f.renames, name)
	return f.renameRows, nil
}

func (f *fakeTurnRepo) DeleteSession(ctx context.Context, sessionId, userEmail string) (int64, error) {
	return f.deletedRows, nil
}

func (f *fakeTurnRepo) SessionExists(ctx context.Context, sessionId, userEmail string) (bool, error) {
	return f.exists, nil
}

func (f *fakeTurnRepo) ListSessions(ctx context.Context, userEmail string, limit, offset int) ([]*entity.SessionSummary, error) {
	return f.summaries, nil
}

var _ contract.TurnRepository = (*fakeTurnRepo)(nil)

type fakeUserRepo struct {
	profile *entity.UserProfile
	findErr error
	patches []contract.ProfilePatch
}

func (f *fakeUserRepo) Find(ctx context.Context, userEmail string) (*entity.UserProfile, error) {
	return f.profile, f.findErr
}

func (f *fakeUserRepo) Patch(ctx context.Context, userEmail string, patch contract.ProfilePatch) error {
	f.patches = append(f.patches, patch)
	return nil
}

var _ contract.UserProfileRepository = (*fakeUserRepo)(nil)

// fakeTranslator prefixes texts with "<target>:" so tests see exactly what
// was localized and to which language. detected is returned by Detect.
type fakeTranslator struct {
	detected   string
	oneCalls   int
	batchCalls int
}

func (f *fakeTranslator) TranslateOne(ctx context.Context, text, target, source string) translate.Result {
	f.oneCalls++
	if target == "en" || target == source {
		return translate.Result{Text: text}
	}
	return translate.Result{Text: target + ":" + text}
}

func (f *fakeTranslator) TranslateMany(ctx context.Context, texts []string, target, source string) translate.BatchResult {
	f.batchCalls++
	out := make([]string, len(texts))
	for i, text := range texts {
		out[i] = target + ":" + text
	}
	return translate.BatchResult{Texts: out}
}

func (f *fakeTranslator) Detect(ctx context.Context, text string) string {
	return f.detected
}

type fakeNormalizer struct {
	out string
}

func (f *fakeNormalizer) ToEnglish(ctx context.Context, text, uiLang string) string {
	if f.out != "" {
		return f.out
	}
	return text
}

type fakeJudge struct {
	verdict relevance.Verdict
	queries []string
	turns   [][]relevance.TurnPair
}

func (f *fakeJudge) IsRelevant(ctx context.Context, query string, turns []relevance.TurnPair) relevance.Verdict {
	f.queries = append(f.queries, query)
	f.turns = append(f.turns, turns)
	if len(turns) == 0 {
		return relevance.Verdict{}
	}
	return f.verdict
}

type fakeTitleMaker struct {
	title string
}

func (f *fakeTitleMaker) MakeTitle(ctx context.Context, userText string) string {
	return f.title
}

type fakeDispatcher struct {
	log      *opLog
	reply    downstream.Reply
	requests []downstream.Request
}

func (f *fakeDispatcher) Dispatch(ctx context.Context, req downstream.Request) downstream.Reply {
	if f.log != nil {
		f.log.add("dispatch")
	}
	f.requests = append(f.requests, req)
	return f.reply
}

func strPtr(s string) *string { return &s }
