package dto

type GetUserInfoRequest struct {
	UserEmail string `json:"user_email" validate:"required"`
}

type UserInfoResponse struct {
	Mode     string  `json:"mode"`
	Language string  `json:"language"`
	Pincode  *string `json:"pincode"`
}

type UpdateUserInfoRequest struct {
	UserEmail string  `json:"user_email" validate:"required"`
	Mode      *string `json:"mode"`
	Language  *string `json:"language"`
	Pincode   *string `json:"pincode"`
}
