package notify

import (
	"fmt"
	"log"
	"time"

	"github.com/thesrcielos/RockPaperScissors/internal/game"
	"github.com/thesrcielos/RockPaperScissors/internal/user"
)

// ReminderService periodically mails users that still have unfinished games.
type ReminderService struct {
	users  user.UserRepository
	games  game.GameRepository
	mailer Mailer
}

func NewReminderService(users user.UserRepository, games game.GameRepository, mailer Mailer) *ReminderService {
	return &ReminderService{
		users:  users,
		games:  games,
		mailer: mailer,
	}
}

func (r *ReminderService) Run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		r.SendReminders()
	}
}

func (r *ReminderService) SendReminders() {
	users, err := r.users.GetUsers()
	if err != nil {
		log.Println("Error listing users for reminders:", err)
		return
	}

	for _, usr := range users {
		if usr.Email == "" {
			continue
		}

		unfinished, err := r.games.GetUnfinishedGames(usr.ID)
		if err != nil {
			log.Println("Error listing unfinished games for", usr.Username, ":", err)
			continue
		}
		if len(unfinished) == 0 {
			continue
		}

		body := fmt.Sprintf("Hello %s, you have %d unfinished Rock, Paper, Scissors games waiting for you!",
			usr.Username, len(unfinished))
		if err := r.mailer.Send(usr.Email, "This is a reminder!", body); err != nil {
			log.Println("Error sending reminder to", usr.Email, ":", err)
		}
	}
}
