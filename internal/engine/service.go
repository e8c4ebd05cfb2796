package engine

import (
	"context"
	"database/sql"

	"github.com/edwincheahmp4/questboard/internal/storage"
)

// Service wires the quest and profile repositories to the progression rules.
type Service struct {
	db       *sql.DB
	tasks    *storage.TaskRepo
	profiles *storage.ProfileRepo
	alloc    *UsernameAllocator
}

func NewService(db *sql.DB) *Service {
	profiles := storage.NewProfileRepo(db)
	return &Service{
		db:       db,
		tasks:    storage.NewTaskRepo(db),
		profiles: profiles,
		alloc:    NewUsernameAllocator(profiles),
	}
}

func (s *Service) TaskRepo() *storage.TaskRepo       { return s.tasks }
func (s *Service) ProfileRepo() *storage.ProfileRepo { return s.profiles }
func (s *Service) Allocator() *UsernameAllocator     { return s.alloc }

// EnsureProfile returns the user's profile, inserting the default
// {exp: 0, level: 1} row first if none exists. Idempotent; this is the
// self-healing step for users whose sign-up bootstrap was interrupted.
func (s *Service) EnsureProfile(ctx context.Context, userID string) (*storage.Profile, error) {
	return ensureProfile(ctx, s.profiles, userID)
}

func ensureProfile(ctx context.Context, profiles *storage.ProfileRepo, userID string) (*storage.Profile, error) {
	p, err := profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}
	p = &storage.Profile{ID: userID, Exp: 0, Level: 1}
	if err := profiles.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// BootstrapProfile allocates a username and inserts the initial profile row
// for a freshly signed-up user.
func (s *Service) BootstrapProfile(ctx context.Context, userID string) (*storage.Profile, error) {
	username, err := s.alloc.Allocate(ctx)
	if err != nil {
		return nil, err
	}
	p := &storage.Profile{ID: userID, Username: username, Exp: 0, Level: 1}
	if err := s.profiles.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
