package dto

type ChatRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	UserEmail string `json:"user_email" validate:"required"`
	UserMsg   string `json:"user_msg" validate:"required"`
}

type ChatResponse struct {
	MessageId     string `json:"message_id"`
	SessionId     string `json:"session_id"`
	BotMsg        string `json:"bot_msg"`
	BotMsgEn      string `json:"bot_msg_en"`
	UserEmail     string `json:"user_email"`
	SessionName   string `json:"session_name"`
	SessionNameUi string `json:"session_name_ui"`
	Renamed       bool   `json:"renamed"`
	RelevanceUsed bool   `json:"relevance_used"`
}
