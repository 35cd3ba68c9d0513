package dto

const (
	SessionDomainRename = "rename-session"
	SessionDomainDelete = "delete-session"
)

type CreateSessionRequest struct {
	UserEmail string `json:"user_email" validate:"required"`
}

type CreateSessionResponse struct {
	UserEmail   string `json:"user_email"`
	SessionId   string `json:"session_id"`
	CreatedTime string `json:"created_time"`
}

type ManageSessionRequest struct {
	Domain      string `json:"domain" validate:"required"`
	UserEmail   string `json:"user_email"`
	SessionId   string `json:"session_id"`
	SessionName string `json:"session_name"`
}
