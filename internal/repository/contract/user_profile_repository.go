package contract

import (
	"context"

	"github.com/manish-1011/KisanSaathi/internal/entity"
)

// ProfilePatch carries the fields of a partial profile update; nil means
// "leave as is".
type ProfilePatch struct {
	Mode     *string
	Language *string
	Pincode  *string
}

type UserProfileRepository interface {
	// Find returns nil (no error) when the user has no profile row.
	Find(ctx context.Context, userEmail string) (*entity.UserProfile, error)
	// Patch upserts the profile row and applies the non-nil fields.
	Patch(ctx context.Context, userEmail string, patch ProfilePatch) error
}
