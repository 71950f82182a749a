package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/RockPaperScissors/internal/stats"
)

var StatsService *stats.StatsService

func RegisterStatsRoutes(g *echo.Group) {
	g.GET("/leaderboard", GetLeaderboardHandler)
	g.GET("/rankings", GetRankingsHandler)
}

func GetLeaderboardHandler(c echo.Context) error {
	entries, err := StatsService.Leaderboard()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"scores": entries,
	})
}

func GetRankingsHandler(c echo.Context) error {
	entries, err := StatsService.Rankings()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"rankings": entries,
	})
}
