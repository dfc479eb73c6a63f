package alerting

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"

	"logfiber-be/internal/entity"
)

// messageSentinel replaces the hash for events with no message, so empty
// input never hashes to a shared digest by accident of construction.
const messageSentinel = "none"

// DebounceKey derives the deterministic suppression key for an event. Keys
// are scoped by project, logType, normalized environment and level, and a
// fixed-length content hash of the message.
func DebounceKey(ev *entity.LogEvent) string {
	msgPart := messageSentinel
	if ev.Message != "" {
		sum := sha1.Sum([]byte(ev.Message))
		msgPart = hex.EncodeToString(sum[:])
	}

	return fmt.Sprintf("alarm:%s:%s:%s:%s:%s",
		ev.ProjectId,
		ev.LogType,
		strings.ToLower(ev.Environment),
		strings.ToUpper(ev.Level),
		msgPart,
	)
}
