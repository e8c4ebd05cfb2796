package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/edwincheahmp4/questboard/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	db, err := storage.Open(ctx, filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewService(db)
}

func TestAddQuestValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var verr ValidationError
	_, err := svc.AddQuest(ctx, AddQuestInput{UserID: "u1", Description: "  ", Difficulty: DifficultyEasy})
	if !errors.As(err, &verr) {
		t.Fatalf("empty description: got %v, want ValidationError", err)
	}
	_, err = svc.AddQuest(ctx, AddQuestInput{UserID: "u1", Description: "slay bugs", Difficulty: Difficulty(15)})
	if !errors.As(err, &verr) {
		t.Fatalf("bad difficulty: got %v, want ValidationError", err)
	}
}

func TestCompleteQuestAwardsXP(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.BootstrapProfile(ctx, "u1"); err != nil {
		t.Fatalf("bootstrap profile: %v", err)
	}
	id, err := svc.AddQuest(ctx, AddQuestInput{UserID: "u1", Description: "write tests", Difficulty: DifficultyMedium})
	if err != nil {
		t.Fatalf("add quest: %v", err)
	}

	res, err := svc.CompleteQuest(ctx, "u1", id)
	if err != nil {
		t.Fatalf("complete quest: %v", err)
	}
	if res.XPAwarded != 20 {
		t.Fatalf("XPAwarded = %d, want 20", res.XPAwarded)
	}
	if res.Profile.Exp != 20 || res.Profile.Level != 1 {
		t.Fatalf("profile = %+v, want exp 20 level 1", res.Profile)
	}

	// Completion is terminal: a second attempt must not double-award.
	_, err = svc.CompleteQuest(ctx, "u1", id)
	var dup AlreadyCompletedError
	if !errors.As(err, &dup) {
		t.Fatalf("second complete: got %v, want AlreadyCompletedError", err)
	}
	p, err := svc.ProfileRepo().Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.Exp != 20 {
		t.Fatalf("exp after double complete = %d, want 20", p.Exp)
	}
}

func TestCompleteQuestLevelUp(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.BootstrapProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("bootstrap profile: %v", err)
	}
	p.Exp = 95
	if err := svc.ProfileRepo().Update(ctx, p); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	id, err := svc.AddQuest(ctx, AddQuestInput{UserID: "u1", Description: "ship it", Difficulty: DifficultyHard})
	if err != nil {
		t.Fatalf("add quest: %v", err)
	}
	res, err := svc.CompleteQuest(ctx, "u1", id)
	if err != nil {
		t.Fatalf("complete quest: %v", err)
	}
	if !res.LevelUp || res.LevelAfter != 2 {
		t.Fatalf("result = %+v, want level up to 2", res)
	}
	if res.Profile.Exp != 25 {
		t.Fatalf("exp = %d, want 25", res.Profile.Exp)
	}
}

func TestCompleteQuestMissing(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CompleteQuest(ctx, "u1", 9999)
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
}

func TestCompleteQuestOtherOwner(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.AddQuest(ctx, AddQuestInput{UserID: "u1", Description: "mine", Difficulty: DifficultyEasy})
	if err != nil {
		t.Fatalf("add quest: %v", err)
	}
	_, err = svc.CompleteQuest(ctx, "u2", id)
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("got %v, want NotFoundError for foreign quest", err)
	}
}

func TestCompleteQuestHealsMissingProfile(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// No bootstrap: simulates a sign-up whose profile insert failed.
	id, err := svc.AddQuest(ctx, AddQuestInput{UserID: "u1", Description: "recover", Difficulty: DifficultyEasy})
	if err != nil {
		t.Fatalf("add quest: %v", err)
	}
	res, err := svc.CompleteQuest(ctx, "u1", id)
	if err != nil {
		t.Fatalf("complete quest: %v", err)
	}
	if res.Profile.Exp != 10 || res.Profile.Level != 1 {
		t.Fatalf("healed profile = %+v, want exp 10 level 1", res.Profile)
	}
	p, err := svc.ProfileRepo().Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p == nil || p.Exp != 10 {
		t.Fatalf("persisted profile = %+v, want exp 10", p)
	}
}

func TestEnsureProfileIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p1, err := svc.EnsureProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("ensure profile: %v", err)
	}
	if p1.Exp != 0 || p1.Level != 1 {
		t.Fatalf("default profile = %+v, want exp 0 level 1", p1)
	}
	p1.Exp = 50
	if err := svc.ProfileRepo().Update(ctx, p1); err != nil {
		t.Fatalf("update profile: %v", err)
	}
	p2, err := svc.EnsureProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("ensure profile again: %v", err)
	}
	if p2.Exp != 50 {
		t.Fatalf("second ensure overwrote exp: %+v", p2)
	}
}

func TestDeleteQuest(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.AddQuest(ctx, AddQuestInput{UserID: "u1", Description: "temp", Difficulty: DifficultyEasy})
	if err != nil {
		t.Fatalf("add quest: %v", err)
	}
	if err := svc.DeleteQuest(ctx, "u1", id); err != nil {
		t.Fatalf("delete quest: %v", err)
	}
	quests, err := svc.ListQuests(ctx, "u1")
	if err != nil {
		t.Fatalf("list quests: %v", err)
	}
	if len(quests) != 0 {
		t.Fatalf("quests after delete = %d, want 0", len(quests))
	}

	// Absence is surfaced, not swallowed.
	err = svc.DeleteQuest(ctx, "u1", id)
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("second delete: got %v, want NotFoundError", err)
	}
}

func TestListQuestsNewestFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var ids []int64
	for _, desc := range []string{"first", "second", "third"} {
		id, err := svc.AddQuest(ctx, AddQuestInput{UserID: "u1", Description: desc, Difficulty: DifficultyEasy})
		if err != nil {
			t.Fatalf("add quest %q: %v", desc, err)
		}
		ids = append(ids, id)
	}
	quests, err := svc.ListQuests(ctx, "u1")
	if err != nil {
		t.Fatalf("list quests: %v", err)
	}
	if len(quests) != 3 {
		t.Fatalf("len = %d, want 3", len(quests))
	}
	for i := range quests {
		if want := ids[len(ids)-1-i]; quests[i].ID != want {
			t.Fatalf("quests[%d].ID = %d, want %d", i, quests[i].ID, want)
		}
	}
}
