package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"logfiber-be/internal/apperror"
	"logfiber-be/internal/dto"
	"logfiber-be/internal/pkg/logger"
)

func TestPurgeDeletesOldEvents(t *testing.T) {
	projects := &fakeProjectRepo{}
	logs := &fakeLogRepo{}
	project := seedProject(t, projects, "checkout")

	now := time.Now()
	seedEvent(t, logs, project.Id, "error", "ancient one", now.Add(-10*24*time.Hour).UnixMilli())
	seedEvent(t, logs, project.Id, "error", "ancient two", now.Add(-8*24*time.Hour).UnixMilli())
	recent := seedEvent(t, logs, project.Id, "error", "still fresh", now.UnixMilli())

	svc := NewPurgeService(projects, logs, nil, "logs", logger.NewNopLogger())

	res, err := svc.Purge(context.Background(), "checkout", &dto.PurgeLogsRequest{LookbackTime: "5d"})
	if err != nil {
		t.Fatalf("Purge() error = %v", err)
	}
	if res.DeletedCount != 2 {
		t.Errorf("DeletedCount = %d, want 2", res.DeletedCount)
	}
	if len(logs.events) != 1 || logs.events[0].Id != recent.Id {
		t.Errorf("surviving events = %d, want only the recent one", len(logs.events))
	}
}

func TestPurgeIsIdempotent(t *testing.T) {
	projects := &fakeProjectRepo{}
	logs := &fakeLogRepo{}
	project := seedProject(t, projects, "checkout")

	now := time.Now()
	seedEvent(t, logs, project.Id, "error", "ancient", now.Add(-10*24*time.Hour).UnixMilli())

	svc := NewPurgeService(projects, logs, nil, "logs", logger.NewNopLogger())
	req := &dto.PurgeLogsRequest{LookbackTime: "5d"}

	first, err := svc.Purge(context.Background(), "checkout", req)
	if err != nil {
		t.Fatalf("first Purge() error = %v", err)
	}
	if first.DeletedCount != 1 {
		t.Errorf("first DeletedCount = %d, want 1", first.DeletedCount)
	}

	second, err := svc.Purge(context.Background(), "checkout", req)
	if err != nil {
		t.Fatalf("second Purge() error = %v", err)
	}
	if second.DeletedCount != 0 {
		t.Errorf("second DeletedCount = %d, want 0", second.DeletedCount)
	}
}

func TestPurgeFiltersByLevelAndEnvironment(t *testing.T) {
	projects := &fakeProjectRepo{}
	logs := &fakeLogRepo{}
	project := seedProject(t, projects, "checkout")

	now := time.Now().Add(-10 * 24 * time.Hour)
	seedEvent(t, logs, project.Id, "error", "kept, level mismatch", now.UnixMilli())
	target := seedEvent(t, logs, project.Id, "warn", "purged", now.UnixMilli())

	svc := NewPurgeService(projects, logs, nil, "logs", logger.NewNopLogger())

	res, err := svc.Purge(context.Background(), "checkout", &dto.PurgeLogsRequest{
		Level:        "warn",
		LookbackTime: "5d",
	})
	if err != nil {
		t.Fatalf("Purge() error = %v", err)
	}
	if res.DeletedCount != 1 {
		t.Errorf("DeletedCount = %d, want 1", res.DeletedCount)
	}
	for _, ev := range logs.events {
		if ev.Id == target.Id {
			t.Errorf("event %s should have been purged", target.Id)
		}
	}
}

func TestPurgeCleansSearchMirror(t *testing.T) {
	projects := &fakeProjectRepo{}
	logs := &fakeLogRepo{}
	project := seedProject(t, projects, "checkout")

	now := time.Now()
	old := seedEvent(t, logs, project.Id, "error", "ancient", now.Add(-10*24*time.Hour).UnixMilli())

	index := &fakeIndex{}
	if err := index.CreateDocument(context.Background(), "logs", IndexDocument(old)); err != nil {
		t.Fatalf("seed index: %v", err)
	}

	svc := NewPurgeService(projects, logs, index, "logs", logger.NewNopLogger())

	if _, err := svc.Purge(context.Background(), "checkout", &dto.PurgeLogsRequest{LookbackTime: "5d"}); err != nil {
		t.Fatalf("Purge() error = %v", err)
	}
	if len(index.docs) != 0 {
		t.Errorf("mirror still holds %d documents, want 0", len(index.docs))
	}
}

func TestPurgeSurvivesMirrorFailure(t *testing.T) {
	projects := &fakeProjectRepo{}
	logs := &fakeLogRepo{}
	project := seedProject(t, projects, "checkout")

	now := time.Now()
	seedEvent(t, logs, project.Id, "error", "ancient", now.Add(-10*24*time.Hour).UnixMilli())

	index := &fakeIndex{searchErr: errors.New("index exploded")}
	svc := NewPurgeService(projects, logs, index, "logs", logger.NewNopLogger())

	// Primary deletion is authoritative; the mirror sweep failing must not
	// surface as a purge failure.
	res, err := svc.Purge(context.Background(), "checkout", &dto.PurgeLogsRequest{LookbackTime: "5d"})
	if err != nil {
		t.Fatalf("Purge() error = %v", err)
	}
	if res.DeletedCount != 1 {
		t.Errorf("DeletedCount = %d, want 1", res.DeletedCount)
	}
}

func TestPurgeRejectsConflictingWindow(t *testing.T) {
	projects := &fakeProjectRepo{}
	seedProject(t, projects, "checkout")

	svc := NewPurgeService(projects, &fakeLogRepo{}, nil, "logs", logger.NewNopLogger())

	_, err := svc.Purge(context.Background(), "checkout", &dto.PurgeLogsRequest{
		LookbackTime: "5d",
		TimeRange:    "2026-01-01 to 2026-01-31",
	})
	if !apperror.IsInput(err) {
		t.Errorf("Purge() error = %v, want an input error", err)
	}
}

func TestPurgeUnknownProject(t *testing.T) {
	svc := NewPurgeService(&fakeProjectRepo{}, &fakeLogRepo{}, nil, "logs", logger.NewNopLogger())

	_, err := svc.Purge(context.Background(), "missing", &dto.PurgeLogsRequest{})
	if !apperror.IsNotFound(err) {
		t.Errorf("Purge() error = %v, want not-found", err)
	}
}
