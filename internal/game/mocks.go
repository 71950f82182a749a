package game

import (
	"github.com/stretchr/testify/mock"
	"github.com/thesrcielos/RockPaperScissors/internal/events"
)

type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) CreateGame(g *Game) error {
	args := m.Called(g)
	return args.Error(0)
}

func (m *MockGameRepository) SaveGame(g *Game) error {
	args := m.Called(g)
	return args.Error(0)
}

func (m *MockGameRepository) ResolveRound(g *Game, mv *Move) error {
	args := m.Called(g, mv)
	return args.Error(0)
}

func (m *MockGameRepository) GetGame(id string) (*Game, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Game), args.Error(1)
}

func (m *MockGameRepository) GetGames() ([]Game, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Game), args.Error(1)
}

func (m *MockGameRepository) GetUnfinishedGames(userID uint) ([]Game, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Game), args.Error(1)
}

func (m *MockGameRepository) GetFinishedGames(userID uint) ([]Game, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Game), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(event events.GameEvent) {
	m.Called(event)
}

// FixedPicker returns a preset sequence of computer plays and repeats the
// last one when exhausted.
type FixedPicker struct {
	Plays []string
	next  int
}

func (p *FixedPicker) Pick() string {
	if len(p.Plays) == 0 {
		return Rock
	}
	play := p.Plays[p.next]
	if p.next < len(p.Plays)-1 {
		p.next++
	}
	return play
}
