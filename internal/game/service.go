package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thesrcielos/RockPaperScissors/internal/apperrors"
	"github.com/thesrcielos/RockPaperScissors/internal/events"
	"github.com/thesrcielos/RockPaperScissors/internal/user"
)

const (
	newGameMessage       = "Good luck playing Rock, Paper, Scissors!"
	makePlayMessage      = "Time to make a play!"
	alreadyOverMessage   = "Game already over!"
	cancelledMessage     = "Game already cancelled!"
	invalidPlayMessage   = "Invalid play! Choose rock, paper or scissors."
	gameCancelledMessage = "Game cancelled."
)

type GameService struct {
	repo      GameRepository
	users     user.UserRepository
	picker    ChoicePicker
	publisher events.Publisher
	locks     *gameLocks
}

func NewGameService(repo GameRepository, users user.UserRepository, picker ChoicePicker, publisher events.Publisher) *GameService {
	return &GameService{
		repo:      repo,
		users:     users,
		picker:    picker,
		publisher: publisher,
		locks:     newGameLocks(),
	}
}

// NewGame creates a game for the given user in the in-progress state.
func (s *GameService) NewGame(username string) (*GameResponse, error) {
	usr, err := s.users.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, apperrors.NewAppError(404, "A User with that name does not exist!", nil)
	}

	g := &Game{
		ID:     uuid.New().String()[:8],
		UserID: usr.ID,
		Date:   time.Now(),
	}
	if err := s.repo.CreateGame(g); err != nil {
		return nil, err
	}

	return s.toResponse(g, newGameMessage)
}

func (s *GameService) GetGame(gameID string) (*GameResponse, error) {
	g, err := s.getGame(gameID)
	if err != nil {
		return nil, err
	}

	if !g.GameOver {
		return s.toResponse(g, makePlayMessage)
	}
	return s.toResponse(g, g.Message)
}

// SubmitPlay resolves one round. A terminal game is returned unchanged with
// its distinguishing message, an invalid play token leaves the game
// untouched, a tie appends a move and keeps the game open, and a decisive
// round ends the game exactly once.
func (s *GameService) SubmitPlay(gameID, play string) (*GameResponse, error) {
	unlock := s.locks.acquire(gameID)
	defer unlock()

	g, err := s.getGame(gameID)
	if err != nil {
		return nil, err
	}

	if g.Cancelled {
		return s.toResponse(g, cancelledMessage)
	}
	if g.GameOver {
		return s.toResponse(g, alreadyOverMessage)
	}

	userPlay := strings.ToLower(strings.TrimSpace(play))
	if !ValidPlay(userPlay) {
		return s.toResponse(g, invalidPlayMessage)
	}

	aiPlay := s.picker.Pick()
	outcome := Resolve(userPlay, aiPlay)

	var msg string
	switch outcome {
	case Tie:
		msg = fmt.Sprintf("Looks like we both picked %s. Play again!", title(userPlay))
	case Win:
		msg = fmt.Sprintf("Congratulations, your %s beats my %s. You win!", title(userPlay), title(aiPlay))
	default:
		msg = fmt.Sprintf("Sorry, my %s beats your %s. You lose!", title(aiPlay), title(userPlay))
	}

	move := Move{
		GameID: g.ID,
		Play:   userPlay,
		AiPlay: aiPlay,
		Result: msg,
	}
	g.Message = msg
	if outcome != Tie {
		g.GameOver = true
		g.Won = outcome == Win
		g.Date = time.Now()
	}

	if err := s.repo.ResolveRound(g, &move); err != nil {
		return nil, err
	}
	g.Moves = append(g.Moves, move)

	response, err := s.toResponse(g, msg)
	if err != nil {
		return nil, err
	}

	if outcome != Tie {
		s.publisher.Publish(events.GameEvent{
			Type: "GAME_FINISHED",
			Payload: events.GameFinishedMessage{
				GameID:   g.ID,
				Username: response.Username,
				Won:      g.Won,
				Message:  msg,
			},
		})
	}

	return response, nil
}

// CancelGame cancels an in-progress game. Finished and already-cancelled
// games are conflicts and stay untouched.
func (s *GameService) CancelGame(gameID string) (*GameResponse, error) {
	unlock := s.locks.acquire(gameID)
	defer unlock()

	g, err := s.getGame(gameID)
	if err != nil {
		return nil, err
	}

	if g.Cancelled {
		return nil, apperrors.NewAppError(409, "Game already cancelled!", nil)
	}
	if g.GameOver {
		return nil, apperrors.NewAppError(409, "Game already over, cannot cancel!", nil)
	}

	g.Cancelled = true
	g.GameOver = true
	g.Date = time.Now()
	g.Message = gameCancelledMessage

	if err := s.repo.SaveGame(g); err != nil {
		return nil, err
	}

	response, err := s.toResponse(g, g.Message)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(events.GameEvent{
		Type: "GAME_CANCELLED",
		Payload: events.GameCancelledMessage{
			GameID:   g.ID,
			Username: response.Username,
		},
	})

	return response, nil
}

// GetGameHistory renders the move ledger of a game.
func (s *GameService) GetGameHistory(gameID string) (string, error) {
	g, err := s.getGame(gameID)
	if err != nil {
		return "", err
	}

	return RenderHistory(g.Moves), nil
}

// GetGames returns every game, most recent first.
func (s *GameService) GetGames() ([]GameResponse, error) {
	games, err := s.repo.GetGames()
	if err != nil {
		return nil, err
	}

	return s.toResponses(games)
}

// GetUserGames returns the user's unfinished games.
func (s *GameService) GetUserGames(username string) ([]GameResponse, error) {
	usr, err := s.users.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, apperrors.NewAppError(404, "A User with that name does not exist!", nil)
	}

	games, err := s.repo.GetUnfinishedGames(usr.ID)
	if err != nil {
		return nil, err
	}

	return s.toResponses(games)
}

func (s *GameService) getGame(gameID string) (*Game, error) {
	g, err := s.repo.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, apperrors.NewAppError(404, "Game not found!", nil)
	}

	return g, nil
}

func (s *GameService) toResponse(g *Game, message string) (*GameResponse, error) {
	usr, err := s.users.GetUser(g.UserID)
	if err != nil {
		return nil, err
	}

	username := ""
	if usr != nil {
		username = usr.Username
	}

	return buildResponse(g, username, message), nil
}

func (s *GameService) toResponses(games []Game) ([]GameResponse, error) {
	usernames := make(map[uint]string)
	responses := make([]GameResponse, 0, len(games))
	for i := range games {
		g := &games[i]
		username, ok := usernames[g.UserID]
		if !ok {
			usr, err := s.users.GetUser(g.UserID)
			if err != nil {
				return nil, err
			}
			if usr != nil {
				username = usr.Username
			}
			usernames[g.UserID] = username
		}

		msg := g.Message
		if !g.GameOver && msg == "" {
			msg = makePlayMessage
		}
		responses = append(responses, *buildResponse(g, username, msg))
	}

	return responses, nil
}

func buildResponse(g *Game, username, message string) *GameResponse {
	moves := make([]MoveView, 0, len(g.Moves))
	for _, m := range g.Moves {
		moves = append(moves, MoveView{
			Play:   m.Play,
			AiPlay: m.AiPlay,
			Result: m.Result,
		})
	}

	return &GameResponse{
		ID:        g.ID,
		Username:  username,
		GameOver:  g.GameOver,
		Won:       g.Won,
		Cancelled: g.Cancelled,
		Date:      g.Date,
		Message:   message,
		Moves:     moves,
	}
}
