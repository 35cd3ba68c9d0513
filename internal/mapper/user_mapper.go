package mapper

import (
	"github.com/manish-1011/KisanSaathi/internal/entity"
	"github.com/manish-1011/KisanSaathi/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

// ToEntity fills the defaults the store may have left NULL.
func (m *UserMapper) ToEntity(p *model.UserProfile) *entity.UserProfile {
	if p == nil {
		return nil
	}

	profile := entity.DefaultUserProfile(p.UserEmail)
	if p.Mode != nil && *p.Mode != "" {
		profile.Mode = entity.UserMode(*p.Mode)
	}
	if p.Language != nil && *p.Language != "" {
		profile.Language = *p.Language
	}
	profile.Pincode = p.Pincode
	return profile
}
