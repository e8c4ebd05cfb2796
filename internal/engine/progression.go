package engine

// ProfileState is the progression-relevant slice of a profile.
type ProfileState struct {
	Exp   int
	Level int
}

// LevelCapacity returns how much XP the given level holds before rolling
// over to the next one.
func LevelCapacity(level int) int {
	if level < 1 {
		level = 1
	}
	return level * 100
}

// ApplyCompletion folds a completed quest's XP award into the profile.
// Overflow rolls into the next level, whose capacity is level*100, so a
// single large award can climb several levels in one call.
//
// Guarantees, given an input satisfying 0 <= exp < level*100:
// the result satisfies the same bound, level never decreases, and the output
// is fully determined by the inputs (no clock, no randomness, no store).
func ApplyCompletion(p ProfileState, award int) ProfileState {
	if p.Level < 1 {
		p.Level = 1
	}
	if award < 0 {
		award = 0
	}
	p.Exp += award
	for p.Exp >= p.Level*100 {
		p.Exp -= p.Level * 100
		p.Level++
	}
	return p
}

// XPToNext returns how much XP remains before the next level-up.
func XPToNext(p ProfileState) int {
	return LevelCapacity(p.Level) - p.Exp
}
