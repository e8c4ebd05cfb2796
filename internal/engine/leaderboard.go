package engine

import "context"

// LeaderboardEntry is a read-only projection of a profile. Blank usernames
// stay blank here; the "Anonymous" fallback belongs to the presentation
// layer.
type LeaderboardEntry struct {
	Username string
	Level    int
	Exp      int
}

const DefaultLeaderboardSize = 10

// Top returns the highest-ranked profiles, recomputed from the store on
// every call. Ordering: level descending, ties by exp descending, remaining
// ties by username.
func (s *Service) Top(ctx context.Context, n int) ([]LeaderboardEntry, error) {
	if n <= 0 {
		n = DefaultLeaderboardSize
	}
	rows, err := s.profiles.Top(ctx, n)
	if err != nil {
		return nil, err
	}
	out := make([]LeaderboardEntry, 0, len(rows))
	for _, p := range rows {
		out = append(out, LeaderboardEntry{Username: p.Username, Level: p.Level, Exp: p.Exp})
	}
	return out, nil
}
