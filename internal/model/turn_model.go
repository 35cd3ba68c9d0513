package model

import "time"

// Turn maps to the shared "sessions" table: one row per turn, plus a
// bootstrap row per session with a NULL message_id.
type Turn struct {
	Id           int64      `gorm:"column:id;primaryKey;autoIncrement"`
	MessageId    *string    `gorm:"column:message_id;type:uuid;index"`
	SessionId    string     `gorm:"column:session_id;type:text;not null;index"`
	UserEmail    string     `gorm:"column:user_email;type:text;not null;index"`
	SessionName  *string    `gorm:"column:session_name;type:text"`
	UserQueryRaw *string    `gorm:"column:user_query_raw;type:text"`
	UserQueryEn  *string    `gorm:"column:user_query_en;type:text"`
	BotMessage   *string    `gorm:"column:bot_message;type:text"`
	CreatedTime  time.Time  `gorm:"column:created_time;not null"`
	EndTime      *time.Time `gorm:"column:end_time"`
}

func (Turn) TableName() string {
	return "sessions"
}
