package stats

import (
	"github.com/stretchr/testify/mock"
)

type MockLeaderboardCache struct {
	mock.Mock
}

func (m *MockLeaderboardCache) Refresh(entries []LeaderboardEntry) error {
	args := m.Called(entries)
	return args.Error(0)
}

func (m *MockLeaderboardCache) Top(n int) ([]LeaderboardEntry, error) {
	args := m.Called(n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]LeaderboardEntry), args.Error(1)
}
