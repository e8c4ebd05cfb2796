package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/edwincheahmp4/questboard/internal/auth"
	"github.com/edwincheahmp4/questboard/internal/engine"
	"github.com/edwincheahmp4/questboard/internal/storage"
)

var ErrNotSignedIn = errors.New("not signed in (run `qb login` first)")

// Snapshot is the state the UI renders: the signed-in user's quests and
// profile plus the global leaderboard. The leaderboard survives sign-out;
// quests and profile do not.
type Snapshot struct {
	Quests      []storage.Todo
	Profile     *storage.Profile
	Leaderboard []engine.LeaderboardEntry
}

// Controller holds the current identity and drives which data is fetched.
// After every mutation it re-fetches the snapshot, including when the
// mutation failed, so local state tracks whatever the store actually
// persisted.
type Controller struct {
	svc       *engine.Service
	auth      *auth.Auth
	tokenPath string
	current   *auth.Identity
}

func NewController(svc *engine.Service, a *auth.Auth, tokenPath string) *Controller {
	return &Controller{svc: svc, auth: a, tokenPath: tokenPath}
}

// Resume restores identity from the persisted session token, if any. A stale
// or tampered token is dropped and the session stays signed out.
func (c *Controller) Resume() error {
	b, err := os.ReadFile(c.tokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	id, err := c.auth.Verify(strings.TrimSpace(string(b)))
	if err != nil {
		_ = os.Remove(c.tokenPath)
		return nil
	}
	c.current = id
	return nil
}

// Current returns the signed-in identity, or nil.
func (c *Controller) Current() *auth.Identity {
	return c.current
}

// SignUp creates the auth identity, then bootstraps the profile (username
// allocation + default row). The two writes are independent: if the second
// fails the identity still exists, and EnsureProfile heals the missing row
// on first completion.
func (c *Controller) SignUp(ctx context.Context, email, password string) (*storage.Profile, error) {
	id, err := c.auth.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return c.svc.BootstrapProfile(ctx, id.UserID)
}

func (c *Controller) SignIn(ctx context.Context, email, password string) (*Snapshot, error) {
	id, token, err := c.auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(c.tokenPath), 0o700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(c.tokenPath, []byte(token), 0o600); err != nil {
		return nil, err
	}
	c.current = id
	return c.Refresh(ctx)
}

// SignOut clears the identity and the persisted token. The leaderboard stays
// readable; the next Refresh simply carries no quests or profile.
func (c *Controller) SignOut() error {
	c.current = nil
	if err := os.Remove(c.tokenPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Leaderboard returns the top-n ranking. Readable without a session.
func (c *Controller) Leaderboard(ctx context.Context, n int) ([]engine.LeaderboardEntry, error) {
	return c.svc.Top(ctx, n)
}

// Refresh re-fetches quests, profile and leaderboard.
func (c *Controller) Refresh(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}
	top, err := c.svc.Top(ctx, engine.DefaultLeaderboardSize)
	if err != nil {
		return nil, err
	}
	snap.Leaderboard = top
	if c.current == nil {
		return snap, nil
	}
	quests, err := c.svc.ListQuests(ctx, c.current.UserID)
	if err != nil {
		return nil, err
	}
	snap.Quests = quests
	profile, err := c.svc.EnsureProfile(ctx, c.current.UserID)
	if err != nil {
		return nil, err
	}
	snap.Profile = profile
	return snap, nil
}

// AddQuest inserts a quest, then refreshes regardless of the outcome.
func (c *Controller) AddQuest(ctx context.Context, description string, d engine.Difficulty) (*Snapshot, error) {
	if c.current == nil {
		return nil, ErrNotSignedIn
	}
	_, opErr := c.svc.AddQuest(ctx, engine.AddQuestInput{
		UserID:      c.current.UserID,
		Description: description,
		Difficulty:  d,
	})
	snap, err := c.Refresh(ctx)
	if opErr != nil {
		return snap, opErr
	}
	return snap, err
}

// CompleteQuest runs the completion transaction, then refreshes regardless
// of the outcome.
func (c *Controller) CompleteQuest(ctx context.Context, questID int64) (*engine.CompleteResult, *Snapshot, error) {
	if c.current == nil {
		return nil, nil, ErrNotSignedIn
	}
	res, opErr := c.svc.CompleteQuest(ctx, c.current.UserID, questID)
	snap, err := c.Refresh(ctx)
	if opErr != nil {
		return nil, snap, opErr
	}
	return res, snap, err
}

// DeleteQuest removes a quest, then refreshes regardless of the outcome.
func (c *Controller) DeleteQuest(ctx context.Context, questID int64) (*Snapshot, error) {
	if c.current == nil {
		return nil, ErrNotSignedIn
	}
	opErr := c.svc.DeleteQuest(ctx, c.current.UserID, questID)
	snap, err := c.Refresh(ctx)
	if opErr != nil {
		return snap, opErr
	}
	return snap, err
}
