package engine

import "strings"

// Difficulty is the XP tier of a quest. The numeric value is the XP awarded
// on completion; it is copied onto the quest row at creation time so later
// tier changes never alter existing awards.
type Difficulty int

const (
	DifficultyEasy   Difficulty = 10
	DifficultyMedium Difficulty = 20
	DifficultyHard   Difficulty = 30
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty accepts a tier name or its XP value.
func ParseDifficulty(input string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "easy", "10":
		return DifficultyEasy, nil
	case "medium", "20":
		return DifficultyMedium, nil
	case "hard", "30":
		return DifficultyHard, nil
	default:
		return 0, ValidationError{Field: "difficulty", Reason: "must be easy, medium or hard"}
	}
}
