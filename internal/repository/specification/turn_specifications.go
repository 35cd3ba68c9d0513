package specification

import (
	"fmt"

	"gorm.io/gorm"
)

type BySessionId struct {
	SessionId string
}

func (s BySessionId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionId)
}

type ByUserEmail struct {
	UserEmail string
}

func (s ByUserEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_email = ?", s.UserEmail)
}

type ByMessageId struct {
	MessageId string
}

func (s ByMessageId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("message_id = ?", s.MessageId)
}

// MessageIdPresent skips session bootstrap rows that carry no turn.
type MessageIdPresent struct{}

func (s MessageIdPresent) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("message_id IS NOT NULL")
}

// WithContent drops rows of partially-failed turns where both the
// normalized query and the reply are empty.
type WithContent struct{}

func (s WithContent) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"NOT ((COALESCE(user_query_en, user_query_raw) IS NULL OR btrim(COALESCE(user_query_en, user_query_raw)) = '') AND (bot_message IS NULL OR btrim(bot_message) = ''))",
	)
}

type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

type Limit struct {
	Limit int
}

func (s Limit) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit)
}
