package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/RockPaperScissors/internal/game"
)

const INVALID_REQUEST = "invalid request"

var GameService *game.GameService

func RegisterGameRoutes(g *echo.Group) {
	g.POST("", CreateGameHandler)
	g.GET("", GetGamesHandler)
	g.GET("/:id", GetGameHandler)
	g.PUT("/:id", SubmitPlayHandler)
	g.DELETE("/:id", CancelGameHandler)
	g.GET("/:id/history", GetGameHistoryHandler)
}

func CreateGameHandler(c echo.Context) error {
	var r game.NewGameRequest
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	created, err := GameService.NewGame(r.Username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"game": created,
	})
}

func GetGamesHandler(c echo.Context) error {
	games, err := GameService.GetGames()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"games": games,
	})
}

func GetGameHandler(c echo.Context) error {
	g, err := GameService.GetGame(c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"game": g,
	})
}

func SubmitPlayHandler(c echo.Context) error {
	var r game.PlayRequest
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	g, err := GameService.SubmitPlay(c.Param("id"), r.Play)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"game": g,
	})
}

func CancelGameHandler(c echo.Context) error {
	g, err := GameService.CancelGame(c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"game": g,
	})
}

func GetGameHistoryHandler(c echo.Context) error {
	history, err := GameService.GetGameHistory(c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"moves": history,
	})
}
