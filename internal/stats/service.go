package stats

import (
	"log"
	"sort"

	"github.com/thesrcielos/RockPaperScissors/internal/game"
	"github.com/thesrcielos/RockPaperScissors/internal/user"
)

// StatsService recomputes derived user metrics wholesale on each request.
// Nothing is maintained incrementally: a leaderboard or ranking read walks
// every user's completed games so the numbers are always fresh.
type StatsService struct {
	users user.UserRepository
	games game.GameRepository
	cache LeaderboardCache
}

func NewStatsService(users user.UserRepository, games game.GameRepository, cache LeaderboardCache) *StatsService {
	return &StatsService{
		users: users,
		games: games,
		cache: cache,
	}
}

// LongestWinStreak walks the user's completed, non-cancelled games from most
// recent backwards. A win extends the current run, a loss resets it.
func (s *StatsService) LongestWinStreak(usr *user.User) (int, error) {
	games, err := s.games.GetFinishedGames(usr.ID)
	if err != nil {
		return 0, err
	}

	current := 0
	longest := 0
	for _, g := range games {
		if g.Won {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}

	return longest, nil
}

// ComputeRanking recounts the user's completed games and wins and writes the
// derived fields back to the user row.
func (s *StatsService) ComputeRanking(usr *user.User) error {
	games, err := s.games.GetFinishedGames(usr.ID)
	if err != nil {
		return err
	}

	wins := 0
	for _, g := range games {
		if g.Won {
			wins++
		}
	}

	usr.TotalGames = len(games)
	usr.Wins = wins
	usr.WinPercentage = 0.0
	if usr.TotalGames > 0 {
		usr.WinPercentage = float64(wins) / float64(usr.TotalGames)
	}

	return s.users.SaveUser(usr)
}

// Leaderboard recomputes the longest win streak for every user, persists it
// and returns the users ordered by streak descending.
func (s *StatsService) Leaderboard() ([]LeaderboardEntry, error) {
	users, err := s.users.GetUsers()
	if err != nil {
		return nil, err
	}

	for i := range users {
		streak, err := s.LongestWinStreak(&users[i])
		if err != nil {
			return nil, err
		}
		users[i].LongestWinStreak = streak
		if err := s.users.SaveUser(&users[i]); err != nil {
			return nil, err
		}
	}

	sort.SliceStable(users, func(i, j int) bool {
		return users[i].LongestWinStreak > users[j].LongestWinStreak
	})

	entries := make([]LeaderboardEntry, 0, len(users))
	for _, usr := range users {
		entries = append(entries, LeaderboardEntry{
			Username:    usr.Username,
			DisplayName: usr.DisplayName,
			Score:       usr.LongestWinStreak,
		})
	}

	if s.cache != nil {
		if err := s.cache.Refresh(entries); err != nil {
			log.Println("Error refreshing leaderboard cache:", err)
		}
	}

	return entries, nil
}

// Rankings recomputes every user's win percentage and returns the users
// ordered by percentage descending.
func (s *StatsService) Rankings() ([]RankingEntry, error) {
	users, err := s.users.GetUsers()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if err := s.ComputeRanking(&users[i]); err != nil {
			return nil, err
		}
	}

	sort.SliceStable(users, func(i, j int) bool {
		return users[i].WinPercentage > users[j].WinPercentage
	})

	entries := make([]RankingEntry, 0, len(users))
	for _, usr := range users {
		entries = append(entries, RankingEntry{
			Username:      usr.Username,
			DisplayName:   usr.DisplayName,
			TotalGames:    usr.TotalGames,
			Wins:          usr.Wins,
			WinPercentage: usr.WinPercentage,
		})
	}

	return entries, nil
}
