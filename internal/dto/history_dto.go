package dto

const (
	HistoryDomainSessionChat = "session-chat"
	HistoryDomainListSession = "list-session"
)

type HistoryRequest struct {
	Domain    string `json:"domain" validate:"required"`
	UserEmail string `json:"user_email"`
	SessionId string `json:"session_id"`
	Language  string `json:"language"`
	Limit     int    `json:"limit"`
	Offset    int    `json:"offset"`
}

type TurnItem struct {
	MessageId   string  `json:"message_id"`
	UserQuery   string  `json:"user_query"`
	BotMessage  string  `json:"bot_message"`
	CreatedTime *string `json:"created_time"`
	EndTime     *string `json:"end_time"`
}

type SessionItem struct {
	SessionId   string `json:"session_id"`
	SessionName string `json:"session_name"`
	CreatedTime string `json:"created_time"`
}

// SessionBuckets keeps the five recency groups in a fixed order; empty
// buckets still serialize.
type SessionBuckets struct {
	Today     []SessionItem `json:"Today"`
	Yesterday []SessionItem `json:"Yesterday"`
	PastWeek  []SessionItem `json:"Past 7 days"`
	PastMonth []SessionItem `json:"Past Month"`
	Older     []SessionItem `json:"Older than a month"`
}
