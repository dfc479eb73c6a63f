package alerting

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"testing"

	"logfiber-be/internal/entity"

	"github.com/google/uuid"
)

func TestDebounceKey(t *testing.T) {
	projectId := uuid.MustParse("6a9c3f1e-0000-4000-8000-000000000001")

	ev := &entity.LogEvent{
		ProjectId:   projectId,
		Level:       "error",
		Environment: "Production",
		LogType:     "application",
		Message:     "boom",
	}

	sum := sha1.Sum([]byte("boom"))
	want := fmt.Sprintf("alarm:%s:application:production:ERROR:%s", projectId, hex.EncodeToString(sum[:]))

	if got := DebounceKey(ev); got != want {
		t.Errorf("DebounceKey() = %q, want %q", got, want)
	}
}

func TestDebounceKeyEmptyMessage(t *testing.T) {
	projectId := uuid.MustParse("6a9c3f1e-0000-4000-8000-000000000001")

	ev := &entity.LogEvent{
		ProjectId:   projectId,
		Level:       "warn",
		Environment: "staging",
		LogType:     "system",
	}

	want := fmt.Sprintf("alarm:%s:system:staging:WARN:none", projectId)
	if got := DebounceKey(ev); got != want {
		t.Errorf("DebounceKey() = %q, want %q", got, want)
	}
}

func TestDebounceKeyStableAcrossCasing(t *testing.T) {
	projectId := uuid.New()

	a := &entity.LogEvent{ProjectId: projectId, Level: "error", Environment: "PRODUCTION", LogType: "application", Message: "x"}
	b := &entity.LogEvent{ProjectId: projectId, Level: "ERROR", Environment: "production", LogType: "application", Message: "x"}

	if DebounceKey(a) != DebounceKey(b) {
		t.Errorf("expected identical keys for events differing only in level/environment casing")
	}
}

func TestDebounceKeyDistinguishesMessages(t *testing.T) {
	projectId := uuid.New()

	a := &entity.LogEvent{ProjectId: projectId, Level: "error", Environment: "production", LogType: "application", Message: "first"}
	b := &entity.LogEvent{ProjectId: projectId, Level: "error", Environment: "production", LogType: "application", Message: "second"}

	if DebounceKey(a) == DebounceKey(b) {
		t.Errorf("expected different keys for different messages")
	}
}
