package contract

import (
	"context"

	"github.com/manish-1011/KisanSaathi/internal/entity"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
}
