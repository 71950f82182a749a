package game

import (
	"math/rand"
	"strings"
)

type Outcome int

const (
	Tie Outcome = iota
	Win
	Loss
)

const (
	Rock     = "rock"
	Paper    = "paper"
	Scissors = "scissors"
)

// beats holds the cyclic relation: key beats value.
var beats = map[string]string{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

var plays = []string{Rock, Paper, Scissors}

func ValidPlay(play string) bool {
	_, ok := beats[play]
	return ok
}

// Resolve classifies a round from the player's point of view. Both inputs
// must be valid plays.
func Resolve(play, aiPlay string) Outcome {
	if play == aiPlay {
		return Tie
	}
	if beats[play] == aiPlay {
		return Win
	}
	return Loss
}

// ChoicePicker supplies the computer's play for a round. Injected so tests
// can force a deterministic sequence.
type ChoicePicker interface {
	Pick() string
}

type RandomPicker struct{}

func NewRandomPicker() *RandomPicker {
	return &RandomPicker{}
}

func (p *RandomPicker) Pick() string {
	return plays[rand.Intn(len(plays))]
}

func title(play string) string {
	if play == "" {
		return play
	}
	return strings.ToUpper(play[:1]) + play[1:]
}
