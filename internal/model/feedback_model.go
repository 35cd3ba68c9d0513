package model

import "time"

type Feedback struct {
	FeedbackId  string    `gorm:"column:feedback_id;type:uuid;primaryKey"`
	SessionId   string    `gorm:"column:session_id;type:text;not null;index"`
	UserEmail   string    `gorm:"column:user_email;type:text;not null"`
	Action      string    `gorm:"column:action;type:text;not null"`
	Comment     *string   `gorm:"column:comment;type:text"`
	CreatedTime time.Time `gorm:"column:created_time;not null"`
}

func (Feedback) TableName() string {
	return "feedback"
}
