package service

import (
	"context"
	"strings"

	"github.com/manish-1011/KisanSaathi/internal/dto"
	"github.com/manish-1011/KisanSaathi/internal/entity"
	"github.com/manish-1011/KisanSaathi/internal/pkg/serverutils"
	"github.com/manish-1011/KisanSaathi/internal/repository/contract"
	"github.com/manish-1011/KisanSaathi/pkg/translate"
)

type IUserInfoService interface {
	Get(ctx context.Context, userEmail string) (*dto.UserInfoResponse, error)
	// Update applies a partial profile update and reports whether anything
	// changed.
	Update(ctx context.Context, request *dto.UpdateUserInfoRequest) (bool, error)
}

type userInfoService struct {
	users contract.UserProfileRepository
}

func NewUserInfoService(users contract.UserProfileRepository) IUserInfoService {
	return &userInfoService{users: users}
}

func (s *userInfoService) Get(ctx context.Context, userEmail string) (*dto.UserInfoResponse, error) {
	userEmail = strings.TrimSpace(userEmail)
	if userEmail == "" {
		return nil, serverutils.BadRequest("user_email is required")
	}

	profile, err := s.users.Find(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = entity.DefaultUserProfile(userEmail)
	}

	return &dto.UserInfoResponse{
		Mode:     string(profile.Mode),
		Language: profile.Language,
		Pincode:  profile.Pincode,
	}, nil
}

func (s *userInfoService) Update(ctx context.Context, request *dto.UpdateUserInfoRequest) (bool, error) {
	userEmail := strings.TrimSpace(request.UserEmail)
	if userEmail == "" {
		return false, serverutils.BadRequest("user_email is required")
	}

	patch := contract.ProfilePatch{}

	if request.Mode != nil {
		mode := strings.ToLower(strings.TrimSpace(*request.Mode))
		if mode != string(entity.UserModeGeneral) && mode != string(entity.UserModePersonal) {
			return false, serverutils.BadRequest("mode must be 'general' or 'personal'")
		}
		patch.Mode = &mode
	}

	if request.Language != nil {
		// Stored as a bare primary subtag, always.
		language := translate.NormalizeTag(*request.Language)
		if language != "" {
			patch.Language = &language
		}
	}

	if request.Pincode != nil && strings.TrimSpace(*request.Pincode) != "" {
		pincode := strings.TrimSpace(*request.Pincode)
		if !isSixDigits(pincode) {
			return false, serverutils.BadRequest("pincode must be a 6-digit number")
		}
		patch.Pincode = &pincode
	}

	if patch.Mode == nil && patch.Language == nil && patch.Pincode == nil {
		return false, nil
	}

	if err := s.users.Patch(ctx, userEmail, patch); err != nil {
		return false, err
	}
	return true, nil
}

func isSixDigits(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
