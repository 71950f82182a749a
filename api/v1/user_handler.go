package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/RockPaperScissors/internal/user"
)

var UserService *user.UserService

func RegisterUserRoutes(g *echo.Group) {
	g.POST("", CreateUserHandler)
	g.GET("", GetUsersHandler)
	g.GET("/:username/games", GetUserGamesHandler)
}

func CreateUserHandler(c echo.Context) error {
	var r user.UserRequest
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	created, err := UserService.CreateUser(&r)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"user": created,
	})
}

func GetUsersHandler(c echo.Context) error {
	users, err := UserService.GetUsers()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"users": users,
	})
}

func GetUserGamesHandler(c echo.Context) error {
	username := c.Param("username")
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username is required")
	}

	games, err := GameService.GetUserGames(username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"games": games,
	})
}
