package engine

import (
	"context"
	"math/rand"
	"time"

	"github.com/edwincheahmp4/questboard/internal/storage"
)

var (
	adjectives = []string{"Happy", "Clever", "Brave", "Swift", "Calm", "Bright", "Lucky", "Bold", "Kind", "Wise"}
	animals    = []string{"Panda", "Tiger", "Eagle", "Fox", "Lion", "Wolf", "Bear", "Hawk", "Otter", "Dolphin"}
)

const maxAllocAttempts = 100

// UsernameAllocator hands out <Adjective><Animal> handles that are unique
// among existing profiles at allocation time. The check is a probe, not a
// reservation: two concurrent sign-ups can still race between check and
// insert.
type UsernameAllocator struct {
	profiles *storage.ProfileRepo
	rng      *rand.Rand
}

func NewUsernameAllocator(profiles *storage.ProfileRepo) *UsernameAllocator {
	return &UsernameAllocator{
		profiles: profiles,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (a *UsernameAllocator) candidate() string {
	return adjectives[a.rng.Intn(len(adjectives))] + animals[a.rng.Intn(len(animals))]
}

// Allocate draws candidates until one has no matching profile row, giving up
// after maxAllocAttempts so a full namespace cannot livelock sign-up.
func (a *UsernameAllocator) Allocate(ctx context.Context) (string, error) {
	for i := 0; i < maxAllocAttempts; i++ {
		name := a.candidate()
		existing, err := a.profiles.GetByUsername(ctx, name)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return name, nil
		}
	}
	return "", AllocationExhaustedError{Attempts: maxAllocAttempts}
}
