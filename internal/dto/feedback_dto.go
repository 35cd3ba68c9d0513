package dto

type FeedbackRequest struct {
	UserEmail string  `json:"user_email" validate:"required"`
	SessionId string  `json:"session_id" validate:"required"`
	Action    string  `json:"action" validate:"required,oneof=up down"`
	Comment   *string `json:"comment"`
}

type FeedbackResponse struct {
	FeedbackId  string  `json:"feedback_id"`
	SessionId   string  `json:"session_id"`
	UserEmail   string  `json:"user_email"`
	Action      string  `json:"action"`
	Comment     *string `json:"comment"`
	CreatedTime string  `json:"created_time"`
}
