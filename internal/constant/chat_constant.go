package constant

const (
	// DefaultSessionTitle is the sentinel a session carries until its first
	// meaningful message triggers the automatic rename.
	DefaultSessionTitle = "New Chat"

	// FallbackSessionName is shown for legacy rows with a NULL session_name.
	FallbackSessionName = "Welcome"

	// LastTurnWindow is how many prior turns feed the relevance gate and
	// the enriched downstream query.
	LastTurnWindow = 5
)

const (
	BucketToday     = "Today"
	BucketYesterday = "Yesterday"
	BucketPastWeek  = "Past 7 days"
	BucketPastMonth = "Past Month"
	BucketOlder     = "Older than a month"
)
