package entity

type UserMode string

const (
	UserModeGeneral  UserMode = "general"
	UserModePersonal UserMode = "personal"
)

type UserProfile struct {
	UserEmail string
	Mode      UserMode
	Language  string
	Pincode   *string
}

// DefaultUserProfile is what an unknown user falls back to.
func DefaultUserProfile(userEmail string) *UserProfile {
	return &UserProfile{
		UserEmail: userEmail,
		Mode:      UserModeGeneral,
		Language:  "en",
	}
}
