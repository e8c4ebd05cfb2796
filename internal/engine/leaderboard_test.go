package engine

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/edwincheahmp4/questboard/internal/storage"
)

func seedProfile(t *testing.T, svc *Service, id, username string, level, exp int) {
	t.Helper()
	p := &storage.Profile{ID: id, Username: username, Exp: exp, Level: level}
	if err := svc.ProfileRepo().Insert(context.Background(), p); err != nil {
		t.Fatalf("insert profile %s: %v", username, err)
	}
}

func TestTopOrdering(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seedProfile(t, svc, "a", "A", 2, 50)
	seedProfile(t, svc, "b", "B", 3, 10)
	seedProfile(t, svc, "c", "C", 2, 80)

	entries, err := svc.Top(ctx, 10)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Username)
	}
	want := []string{"B", "C", "A"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("order = %v, want %v", names, want)
	}
}

func TestTopIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seedProfile(t, svc, "a", "A", 2, 50)
	seedProfile(t, svc, "b", "B", 2, 50)
	seedProfile(t, svc, "c", "C", 5, 0)

	first, err := svc.Top(ctx, 10)
	if err != nil {
		t.Fatalf("top #1: %v", err)
	}
	second, err := svc.Top(ctx, 10)
	if err != nil {
		t.Fatalf("top #2: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated reads differ: %v vs %v", first, second)
	}
}

func TestTopDefaultSize(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 13; i++ {
		seedProfile(t, svc, fmt.Sprintf("u%d", i), fmt.Sprintf("Player%02d", i), 1+i, 0)
	}

	entries, err := svc.Top(ctx, 0)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(entries) != DefaultLeaderboardSize {
		t.Fatalf("len = %d, want %d", len(entries), DefaultLeaderboardSize)
	}
	if entries[0].Level != 13 {
		t.Fatalf("entries[0].Level = %d, want 13", entries[0].Level)
	}
}
