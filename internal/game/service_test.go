package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/thesrcielos/RockPaperScissors/internal/apperrors"
	"github.com/thesrcielos/RockPaperScissors/internal/user"
)

func newTestService(repo *MockGameRepository, users *user.MockUserRepository, picker ChoicePicker) (*GameService, *MockPublisher) {
	publisher := &MockPublisher{}
	return NewGameService(repo, users, picker, publisher), publisher
}

func TestNewGame(t *testing.T) {
	repo := &MockGameRepository{}
	users := &user.MockUserRepository{}
	service, _ := newTestService(repo, users, &FixedPicker{})

	alice := &user.User{ID: 1, Username: "alice", DisplayName: "Alice"}
	users.On("GetUserByUsername", "alice").Return(alice, nil)
	users.On("GetUser", uint(1)).Return(alice, nil)
	repo.On("CreateGame", mock.AnythingOfType("*game.Game")).Return(nil)

	resp, err := service.NewGame("alice")
	assert.NoError(t, err)
	assert.False(t, resp.GameOver)
	assert.False(t, resp.Cancelled)
	assert.Empty(t, resp.Moves)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "Good luck playing Rock, Paper, Scissors!", resp.Message)
	repo.AssertExpectations(t)
}

func TestNewGameUserNotFound(t *testing.T) {
	repo := &MockGameRepository{}
	users := &user.MockUserRepository{}
	service, _ := newTestService(repo, users, &FixedPicker{})

	users.On("GetUserByUsername", "ghost").Return(nil, nil)

	_, err := service.NewGame("ghost")
	assert.Error(t, err)
	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Code)
	repo.AssertNotCalled(t, "CreateGame", mock.Anything)
}

func TestSubmitPlayDecisiveWinEndsGame(t *testing.T) {
	repo := &MockGameRepository{}
	users := &user.MockUserRepository{}
	// Computer forced to scissors so rock wins
	service, publisher := newTestService(repo, users, &FixedPicker{Plays: []string{Scissors}})

	alice := &user.User{ID: 1, Username: "alice"}
	g := &Game{ID: "abc12345", UserID: 1}
	repo.On("GetGame", "abc12345").Return(g, nil)
	repo.On("ResolveRound", g, mock.AnythingOfType("*game.Move")).Return(nil)
	users.On("GetUser", uint(1)).Return(alice, nil)
	publisher.On("Publish", mock.AnythingOfType("events.GameEvent")).Return()

	resp, err := service.SubmitPlay("abc12345", "rock")
	assert.NoError(t, err)
	assert.True(t, resp.GameOver)
	assert.True(t, resp.Won)
	assert.Len(t, resp.Moves, 1)
	assert.Equal(t, "Congratulations, your Rock beats my Scissors. You win!", resp.Message)
	assert.True(t, g.GameOver)
	assert.True(t, g.Won)
	publisher.AssertNumberOfCalls(t, "Publish", 1)
	repo.AssertExpectations(t)
}

func TestSubmitPlayTieKeepsGameOpen(t *testing.T) {
	repo := &MockGameRepository{}
	users := &user.MockUserRepository{}
	service, publisher := newTestService(repo, users, &FixedPicker{Plays: []string{Rock}})

	alice := &user.User{ID: 1, Username: "alice"}
	g := &Game{ID: "abc12345", UserID: 1}
	repo.On("GetGame", "abc12345").Return(g, nil)
	repo.On("ResolveRound", g, mock.AnythingOfType("*game.Move")).Return(nil)
	users.On("GetUser", uint(1)).Return(alice, nil)

	resp, err := service.SubmitPlay("abc12345", "rock")
	assert.NoError(t, err)
	assert.False(t, resp.GameOver)
	assert.Len(t, resp.Moves, 1)
	assert.Equal(t, "Looks like we both picked Rock. Play again!", resp.Message)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
	repo.AssertExpectations(t)
}

func TestSubmitPlayInvalidTokenLeavesGameUntouched(t *testing.T) {
	repo := &MockGameRepository{}
	users := &user.MockUserRepository{}
	service, publisher := newTestService(repo, users, &FixedPicker{Plays: []string{Rock}})

	alice := &user.User{ID: 1, Username: "alice"}
	g := &Game{ID: "abc12345", UserID: 1}
	repo.On("GetGame", "abc12345").Return(g, nil)
	users.On("GetUser", uint(1)).Return(alice, nil)

	resp, err := service.SubmitPlay("abc12345", "lizard")
	assert.NoError(t, err)
	assert.False(t, resp.GameOver)
	assert.Empty(t, resp.Moves)
	assert.Equal(t, "Invalid play! Choose rock, paper or scissors.", resp.Message)
	repo.AssertNotCalled(t, "ResolveRound", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "SaveGame", mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestSubmitPlayFailedRoundCommitLeavesGameOpen(t *testing.T) {
	repo := &MockGameRepository{}
	users := &user.MockUserRepository{}
	service, publisher := newTestService(repo, users, &FixedPicker{Plays: []string{Scissors}})

	g := &Game{ID: "abc12345", UserID: 1}
	repo.On("GetGame", "abc12345").Return(g, nil)
	commitErr := apperrors.NewAppError(500, "error saving round", errors.New("connection reset"))
	repo.On("ResolveRound", g, mock.AnythingOfType("*game.Move")).Return(commitErr)

	resp, err := service.SubmitPlay("abc12345", "rock")
	assert.Nil(t, resp)
	assert.Error(t, err)
	// The round is a single atomic commit: the error surfaces, no move is
	// appended outside it and nothing is announced.
	assert.Empty(t, g.Moves)
	repo.AssertNumberOfCalls(t, "ResolveRound", 1)
	repo.AssertNotCalled(t, "SaveGame", mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestSubmitPlayOnFinishedGameIsNoOp(t *testing.T) {
	repo := &MockGameRepository{}
	users := &user.MockUserRepository{}
	service, publisher := newTestService(repo, users, &FixedPicker{Plays: []string{Scissors}})

	alice := &user.User{ID: 1, Username: "alice"}
	g := &Game{
		ID:       "abc12345",
		UserID:   1,
		GameOver: true,
		Won:      true,
		Message:  "Congratulations, your Rock beats my Scissors. You win!",
		Moves:    []Move{{Play: "rock", AiPlay: "scissors", Result: "win"}},
	}
	repo.On("GetGame", "abc12345").Return(g, nil)
	users.On("GetUser", uint(1)).Return(alice, nil)

	resp, err := service.SubmitPlay("abc12345", "paper")
	assert.NoError(t, err)
	assert.True(t, resp.GameOver)
	assert.True(t, resp.Won)
	assert.Len(t, resp.Moves, 1)
	assert.Equal(t, "Game already over!", resp.Message)
	repo.AssertNotCalled(t, "ResolveRound", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "SaveGame", mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestSubmitPlayOnCancelledGame(t *testing.T) {
	repo := &MockGameRepository{}
	users := &user.MockUserRepository{}
	service, _ := newTestService(repo, users, &FixedPicker{})

	alice := &user.User{ID: 1, Username: "alice"}
	g := &Game{ID: "abc12345", UserID: 1, GameOver: true, Cancelled: true}
	repo.On("GetGame", "abc12345").Return(g, nil)
	users.On("GetUser", uint(1)).Return(alice, nil)

	resp, err := service.SubmitPlay("abc12345", "rock")
	assert.NoError(t, err)
	assert.True(t, resp.Cancelled)
	assert.Equal(t, "Game already cancelled!", resp.Message)
	repo.AssertNotCalled(t, "ResolveRound", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "SaveGame", mock.Anything)
}

func TestSubmitPlayGameNotFound(t *testing.T) {
	repo := &MockGameRepository{}
	users := &user.MockUserRepository{}
	service, _ := newTestService(repo, users, &FixedPicker{})

	repo.On("GetGame", "missing1").Return(nil, nil)

	_, err := service.SubmitPlay("missing1", "rock")
	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Code)
}

func TestCancelGame(t *testing.T) {
	repo := &MockGameRepository{}
	users := &user.MockUserRepository{}
	service, publisher := newTestService(repo, users, &FixedPicker{})

	alice := &user.User{ID: 1, Username: "alice"}
	g := &Game{ID: "abc12345", UserID: 1}
	repo.On("GetGame", "abc12345").Return(g, nil)
	repo.On("SaveGame", g).Return(nil)
	users.On("GetUser", uint(1)).Return(alice, nil)
	publisher.On("Publish", mock.AnythingOfType("events.GameEvent")).Return()

	resp, err := service.CancelGame("abc12345")
	assert.NoError(t, err)
	assert.True(t, resp.Cancelled)
	assert.True(t, resp.GameOver)
	assert.False(t, resp.Won)
	repo.AssertExpectations(t)
}

func TestCancelGameTwiceIsConflict(t *testing.T) {
	repo := &MockGameRepository{}
	users := &user.MockUserRepository{}
	service, _ := newTestService(repo, users, &FixedPicker{})

	g := &Game{ID: "abc12345", UserID: 1, GameOver: true, Cancelled: true}
	repo.On("GetGame", "abc12345").Return(g, nil)

	_, err := service.CancelGame("abc12345")
	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 409, appErr.Code)
	repo.AssertNotCalled(t, "SaveGame", mock.Anything)
}

func TestCancelFinishedGameIsConflict(t *testing.T) {
	repo := &MockGameRepository{}
	users := &user.MockUserRepository{}
	service, _ := newTestService(repo, users, &FixedPicker{})

	g := &Game{ID: "abc12345", UserID: 1, GameOver: true, Won: true}
	repo.On("GetGame", "abc12345").Return(g, nil)

	_, err := service.CancelGame("abc12345")
	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 409, appErr.Code)
	assert.True(t, g.Won)
	assert.False(t, g.Cancelled)
	repo.AssertNotCalled(t, "SaveGame", mock.Anything)
}

func TestGetGameHistory(t *testing.T) {
	repo := &MockGameRepository{}
	users := &user.MockUserRepository{}
	service, _ := newTestService(repo, users, &FixedPicker{})

	g := &Game{
		ID:     "abc12345",
		UserID: 1,
		Moves: []Move{
			{Play: "rock", AiPlay: "rock", Result: "tie"},
			{Play: "rock", AiPlay: "scissors", Result: "win"},
		},
	}
	repo.On("GetGame", "abc12345").Return(g, nil)

	history, err := service.GetGameHistory("abc12345")
	assert.NoError(t, err)
	assert.Equal(t, "{play: rock, ai_play: rock, result: tie}, {play: rock, ai_play: scissors, result: win}", history)
}

func TestGetUserGamesUserNotFound(t *testing.T) {
	repo := &MockGameRepository{}
	users := &user.MockUserRepository{}
	service, _ := newTestService(repo, users, &FixedPicker{})

	users.On("GetUserByUsername", "ghost").Return(nil, nil)

	_, err := service.GetUserGames("ghost")
	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Code)
}
