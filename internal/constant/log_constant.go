package constant

const (
	// DeleteBatchSize is the primary store's batch-write limit per delete
	// round trip.
	DeleteBatchSize = 500

	// MirrorPageSize is the page size used while sweeping the search index
	// during best-effort mirror cleanup.
	MirrorPageSize = 250

	// AlarmDebounceTTLSeconds suppresses repeat deliveries of the same
	// logical alarm signature.
	AlarmDebounceTTLSeconds = 300

	// MaxPageSize bounds a caller-supplied page size.
	MaxPageSize = 1000

	// DefaultPageSize applies when the caller leaves pageSize unset.
	DefaultPageSize = 50

	// LogIngestedTopic carries freshly persisted event ids to the alarm
	// evaluation consumer.
	LogIngestedTopic = "log.ingested"
)
