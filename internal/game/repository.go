package game

import (
	"errors"

	"github.com/thesrcielos/RockPaperScissors/internal/apperrors"
	"github.com/thesrcielos/RockPaperScissors/pkg/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GameRepository interface {
	CreateGame(g *Game) error
	SaveGame(g *Game) error
	ResolveRound(g *Game, m *Move) error
	GetGame(id string) (*Game, error)
	GetGames() ([]Game, error)
	GetUnfinishedGames(userID uint) ([]Game, error)
	GetFinishedGames(userID uint) ([]Game, error)
}

type GormGameRepository struct{}

func NewGormGameRepository() *GormGameRepository {
	return &GormGameRepository{}
}

func (r *GormGameRepository) CreateGame(g *Game) error {
	if err := db.DB.Create(g).Error; err != nil {
		return apperrors.NewAppError(500, "error creating game", err)
	}

	return nil
}

func (r *GormGameRepository) SaveGame(g *Game) error {
	if err := db.DB.Omit(clause.Associations).Save(g).Error; err != nil {
		return apperrors.NewAppError(500, "error saving game", err)
	}

	return nil
}

// ResolveRound commits one resolved round atomically: the appended move and
// the game row land together or not at all.
func (r *GormGameRepository) ResolveRound(g *Game, m *Move) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(g).Error
	})
	if err != nil {
		return apperrors.NewAppError(500, "error saving round", err)
	}

	return nil
}

func (r *GormGameRepository) GetGame(id string) (*Game, error) {
	var g Game
	result := db.DB.Preload("Moves", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("moves.id ASC")
	}).First(&g, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error getting game", result.Error)
	}

	return &g, nil
}

func (r *GormGameRepository) GetGames() ([]Game, error) {
	var games []Game
	err := db.DB.Preload("Moves", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("moves.id ASC")
	}).Order("date DESC").Find(&games).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error listing games", err)
	}

	return games, nil
}

func (r *GormGameRepository) GetUnfinishedGames(userID uint) ([]Game, error) {
	var games []Game
	err := db.DB.Where("user_id = ? AND game_over = ?", userID, false).
		Order("date DESC").Find(&games).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error listing unfinished games", err)
	}

	return games, nil
}

func (r *GormGameRepository) GetFinishedGames(userID uint) ([]Game, error) {
	var games []Game
	err := db.DB.Where("user_id = ? AND game_over = ? AND cancelled = ?", userID, true, false).
		Order("date DESC").Find(&games).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error listing finished games", err)
	}

	return games, nil
}
