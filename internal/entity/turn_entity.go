package entity

import "time"

// Turn is one user↔bot exchange. A session's bootstrap row is stored in the
// same table with a nil MessageId and no query text.
type Turn struct {
	Id           int64
	MessageId    *string
	SessionId    string
	UserEmail    string
	SessionName  *string
	UserQueryRaw *string
	UserQueryEn  *string
	BotMessage   *string
	CreatedTime  time.Time
	EndTime      *time.Time
}

// SessionSummary is one session in the recency listing, with last activity
// derived from its newest turn.
type SessionSummary struct {
	SessionId    string
	SessionName  string
	LastActivity time.Time
}
