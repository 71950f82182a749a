package game

import "time"

type Game struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Date      time.Time `json:"date"`
	GameOver  bool      `json:"gameOver"`
	Won       bool      `json:"won"`
	Cancelled bool      `json:"cancelled"`
	Message   string    `json:"message"`
	Moves     []Move    `gorm:"foreignKey:GameID" json:"moves"`
}

type Move struct {
	ID     uint   `gorm:"primaryKey" json:"-"`
	GameID string `gorm:"not null;index" json:"-"`
	Play   string `json:"play"`
	AiPlay string `json:"aiPlay"`
	Result string `json:"result"`
}

type NewGameRequest struct {
	Username string `json:"username"`
}

type PlayRequest struct {
	Play string `json:"play"`
}

type MoveView struct {
	Play   string `json:"play"`
	AiPlay string `json:"aiPlay"`
	Result string `json:"result"`
}

type GameResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	GameOver  bool       `json:"gameOver"`
	Won       bool       `json:"won"`
	Cancelled bool       `json:"cancelled"`
	Date      time.Time  `json:"date"`
	Message   string     `json:"message"`
	Moves     []MoveView `json:"moves"`
}
