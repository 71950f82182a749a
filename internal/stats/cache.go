package stats

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/thesrcielos/RockPaperScissors/internal/apperrors"
)

var ctx = context.Background()

const leaderboardKey = "leaderboard"
const leaderboardNamesKey = "leaderboard:names"

// LeaderboardCache holds the last computed leaderboard so consumers that
// cannot afford the bulk recompute (the live feed snapshot) get a cheap read.
type LeaderboardCache interface {
	Refresh(entries []LeaderboardEntry) error
	Top(n int) ([]LeaderboardEntry, error)
}

type RedisLeaderboardCache struct {
	db *redis.Client
}

func NewRedisLeaderboardCache(db *redis.Client) *RedisLeaderboardCache {
	return &RedisLeaderboardCache{db: db}
}

func (c *RedisLeaderboardCache) Refresh(entries []LeaderboardEntry) error {
	pipe := c.db.TxPipeline()
	pipe.Del(ctx, leaderboardKey)
	pipe.Del(ctx, leaderboardNamesKey)
	for _, entry := range entries {
		pipe.ZAdd(ctx, leaderboardKey, redis.Z{
			Score:  float64(entry.Score),
			Member: entry.Username,
		})
		pipe.HSet(ctx, leaderboardNamesKey, entry.Username, entry.DisplayName)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.NewAppError(500, "error refreshing leaderboard cache", err)
	}

	return nil
}

func (c *RedisLeaderboardCache) Top(n int) ([]LeaderboardEntry, error) {
	members, err := c.db.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(n)-1).Result()
	if err != nil {
		return nil, apperrors.NewAppError(500, "error reading leaderboard cache", err)
	}

	usernames := make([]string, 0, len(members))
	for _, m := range members {
		if username, ok := m.Member.(string); ok {
			usernames = append(usernames, username)
		}
	}

	var names []interface{}
	if len(usernames) > 0 {
		names, err = c.db.HMGet(ctx, leaderboardNamesKey, usernames...).Result()
		if err != nil {
			return nil, apperrors.NewAppError(500, "error reading leaderboard names", err)
		}
	}

	return buildLeaderboardEntries(members, names), nil
}

func buildLeaderboardEntries(members []redis.Z, names []interface{}) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(members))
	i := 0
	for _, m := range members {
		username, ok := m.Member.(string)
		if !ok {
			continue
		}

		displayName := ""
		if i < len(names) {
			if name, ok := names[i].(string); ok {
				displayName = name
			}
		}
		i++

		entries = append(entries, LeaderboardEntry{
			Username:    username,
			DisplayName: displayName,
			Score:       int(m.Score),
		})
	}

	return entries
}
