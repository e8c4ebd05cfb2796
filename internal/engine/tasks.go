package engine

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/edwincheahmp4/questboard/internal/storage"
)

type AddQuestInput struct {
	UserID      string
	Description string
	Difficulty  Difficulty
}

func (s *Service) AddQuest(ctx context.Context, in AddQuestInput) (int64, error) {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return 0, ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if !in.Difficulty.IsValid() {
		return 0, ValidationError{Field: "difficulty", Reason: "must be easy, medium or hard"}
	}
	return s.tasks.Insert(ctx, storage.TodoInsert{
		UserID:     in.UserID,
		Task:       desc,
		Difficulty: int(in.Difficulty),
		XP:         int(in.Difficulty),
	})
}

type CompleteResult struct {
	QuestID     int64
	XPAwarded   int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	Profile     storage.Profile
}

// CompleteQuest marks the quest done and credits its frozen XP award to the
// owner's profile. Both writes run in one transaction: if the profile update
// fails, the completion rolls back, so a quest is never consumed without its
// XP being granted.
func (s *Service) CompleteQuest(ctx context.Context, userID string, questID int64) (*CompleteResult, error) {
	var res *CompleteResult
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		tasks := s.tasks.WithTx(tx)
		profiles := s.profiles.WithTx(tx)

		t, err := tasks.Get(ctx, questID)
		if err != nil {
			return err
		}
		if t == nil || t.UserID != userID {
			return NotFoundError{Kind: "quest", ID: strconv.FormatInt(questID, 10)}
		}
		if t.Completed {
			return AlreadyCompletedError{ID: questID}
		}
		// The completed=0 guard inside MarkCompleted catches a completion
		// that landed between the read above and this write.
		if err := tasks.MarkCompleted(ctx, questID, userID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return AlreadyCompletedError{ID: questID}
			}
			return err
		}

		p, err := ensureProfile(ctx, profiles, userID)
		if err != nil {
			return err
		}
		before := p.Level
		next := ApplyCompletion(ProfileState{Exp: p.Exp, Level: p.Level}, t.XP)
		p.Exp = next.Exp
		p.Level = next.Level
		if err := profiles.Update(ctx, p); err != nil {
			return err
		}

		res = &CompleteResult{
			QuestID:     questID,
			XPAwarded:   t.XP,
			LevelBefore: before,
			LevelAfter:  p.Level,
			LevelUp:     p.Level > before,
			Profile:     *p,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// DeleteQuest removes the quest unconditionally. A missing row surfaces as
// NotFoundError rather than being swallowed.
func (s *Service) DeleteQuest(ctx context.Context, userID string, questID int64) error {
	if err := s.tasks.Delete(ctx, questID, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return NotFoundError{Kind: "quest", ID: strconv.FormatInt(questID, 10)}
		}
		return err
	}
	return nil
}

// ListQuests returns the user's quests, newest first.
func (s *Service) ListQuests(ctx context.Context, userID string) ([]storage.Todo, error) {
	return s.tasks.ListByOwner(ctx, userID)
}
