package contract

import (
	"context"
	"time"

	"github.com/manish-1011/KisanSaathi/internal/entity"
	"github.com/manish-1011/KisanSaathi/internal/repository/specification"
)

type TurnRepository interface {
	Create(ctx context.Context, turn *entity.Turn) error
	// SetReply writes the bot reply and end time of a persisted turn, once.
	SetReply(ctx context.Context, messageId, sessionId, userEmail, botMessage string, endTime time.Time) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Turn, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Turn, error)
	// RenameSession updates session_name across every row of the session and
	// reports how many rows it touched.
	RenameSession(ctx context.Context, sessionId, userEmail, name string) (int64, error)
	DeleteSession(ctx context.Context, sessionId, userEmail string) (int64, error)
	SessionExists(ctx context.Context, sessionId, userEmail string) (bool, error)
	// ListSessions returns one summary per session, newest activity first.
	ListSessions(ctx context.Context, userEmail string, limit, offset int) ([]*entity.SessionSummary, error)
}
