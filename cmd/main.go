package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	v1 "github.com/thesrcielos/RockPaperScissors/api/v1"
	"github.com/thesrcielos/RockPaperScissors/internal/apperrors"
	"github.com/thesrcielos/RockPaperScissors/internal/events"
	"github.com/thesrcielos/RockPaperScissors/internal/game"
	"github.com/thesrcielos/RockPaperScissors/internal/notify"
	"github.com/thesrcielos/RockPaperScissors/internal/stats"
	"github.com/thesrcielos/RockPaperScissors/internal/user"
	"github.com/thesrcielos/RockPaperScissors/pkg/db"
	"github.com/thesrcielos/RockPaperScissors/websocket"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️File .env not found, using system values")
	}

	db.Init()
	db.DB.AutoMigrate(&user.User{}, &game.Game{}, &game.Move{})

	userRepo := user.NewGormUserRepository()
	gameRepo := game.NewGormGameRepository()
	eventRepo := events.NewRedisEventRepository(db.Rdb)
	cache := stats.NewRedisLeaderboardCache(db.Rdb)

	if err := eventRepo.SubscribeEvents(); err != nil {
		log.Println("Error subscribing to game events:", err)
	}

	v1.UserService = user.NewUserService(userRepo)
	v1.GameService = game.NewGameService(gameRepo, userRepo, game.NewRandomPicker(), eventRepo)
	v1.StatsService = stats.NewStatsService(userRepo, gameRepo, cache)
	websocket.LeaderboardCache = cache

	reminders := notify.NewReminderService(userRepo, gameRepo, notify.NewMailerFromEnv())
	go reminders.Run(time.Hour)

	e := echo.New()
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	api := e.Group("/api/v1")
	v1.RegisterUserRoutes(api.Group("/users"))
	v1.RegisterGameRoutes(api.Group("/games"))
	v1.RegisterStatsRoutes(api)

	e.GET("/feed", websocket.FeedHandler)

	e.Logger.Fatal(e.Start(":8080"))
}
