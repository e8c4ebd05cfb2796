package engine

import "fmt"

// ValidationError rejects bad quest input before it reaches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a mutation aimed at a row that no longer exists.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// AlreadyCompletedError rejects a second completion of the same quest.
// Completion is terminal; without this a replayed command would double-credit
// the XP award.
type AlreadyCompletedError struct {
	ID int64
}

func (e AlreadyCompletedError) Error() string {
	return fmt.Sprintf("quest %d is already completed", e.ID)
}

// AllocationExhaustedError is returned when the username allocator cannot
// find a free handle within its attempt budget.
type AllocationExhaustedError struct {
	Attempts int
}

func (e AllocationExhaustedError) Error() string {
	return fmt.Sprintf("could not allocate a unique username after %d attempts", e.Attempts)
}
