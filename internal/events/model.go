package events

type GameEvent struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type GameFinishedMessage struct {
	GameID   string `json:"gameId"`
	Username string `json:"username"`
	Won      bool   `json:"won"`
	Message  string `json:"message"`
}

type GameCancelledMessage struct {
	GameID   string `json:"gameId"`
	Username string `json:"username"`
}
