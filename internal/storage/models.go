package storage

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type Todo struct {
	ID         int64
	UserID     string
	Task       string
	Difficulty int
	// XP is the award frozen at creation time. Completing the quest credits
	// this value even if the difficulty tiers change later.
	XP        int
	Completed bool
	CreatedAt time.Time
}

type Profile struct {
	ID       string
	Username string
	Exp      int
	Level    int
}
