package entity

import "time"

type FeedbackAction string

const (
	FeedbackActionUp   FeedbackAction = "up"
	FeedbackActionDown FeedbackAction = "down"
)

type Feedback struct {
	FeedbackId  string
	SessionId   string
	UserEmail   string
	Action      FeedbackAction
	Comment     *string
	CreatedTime time.Time
}
