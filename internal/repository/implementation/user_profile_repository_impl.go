package implementation

import (
	"context"
	"errors"

	"github.com/manish-1011/KisanSaathi/internal/entity"
	"github.com/manish-1011/KisanSaathi/internal/mapper"
	"github.com/manish-1011/KisanSaathi/internal/model"
	"github.com/manish-1011/KisanSaathi/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserProfileRepository(db *gorm.DB) contract.UserProfileRepository {
	return &UserProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserProfileRepositoryImpl) Find(ctx context.Context, userEmail string) (*entity.UserProfile, error) {
	var m model.UserProfile
	err := r.db.WithContext(ctx).Where("user_email = ?", userEmail).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UserProfileRepositoryImpl) Patch(ctx context.Context, userEmail string, patch contract.ProfilePatch) error {
	// Ensure the row exists before the partial update.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_email"}},
			DoNothing: true,
		}).
		Create(&model.UserProfile{UserEmail: userEmail}).Error
	if err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if patch.Mode != nil {
		updates["mode"] = *patch.Mode
	}
	if patch.Language != nil {
		updates["language"] = *patch.Language
	}
	if patch.Pincode != nil {
		updates["pincode"] = *patch.Pincode
	}
	if len(updates) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Model(&model.UserProfile{}).
		Where("user_email = ?", userEmail).
		Updates(updates).Error
}
