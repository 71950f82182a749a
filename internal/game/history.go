package game

import (
	"fmt"
	"strings"
)

// RenderHistory renders a game's moves in chronological order as one
// readable string.
func RenderHistory(moves []Move) string {
	parts := make([]string, 0, len(moves))
	for _, m := range moves {
		parts = append(parts, fmt.Sprintf("{play: %s, ai_play: %s, result: %s}", m.Play, m.AiPlay, m.Result))
	}

	return strings.Join(parts, ", ")
}
