package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

const eventsChannel = "game_events"

// Publisher is the write side of the live feed; game code only needs this.
type Publisher interface {
	Publish(event GameEvent)
}

type EventRepository interface {
	Publisher
	SubscribeEvents() error
}

type RedisEventRepository struct {
	db *redis.Client
}

func NewRedisEventRepository(db *redis.Client) *RedisEventRepository {
	return &RedisEventRepository{db: db}
}

func (r *RedisEventRepository) Publish(event GameEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Println("Error encoding event:", err)
		return
	}

	if err := r.db.Publish(ctx, eventsChannel, string(data)).Err(); err != nil {
		log.Println("Error publishing event:", err)
	}
}

// SubscribeEvents fans incoming events out to every connected spectator.
// Events go through Redis so every instance sees plays resolved anywhere.
func (r *RedisEventRepository) SubscribeEvents() error {
	sub := r.db.Subscribe(ctx, eventsChannel)
	_, err := sub.Receive(ctx)
	if err != nil {
		log.Println("error subscribing", err)
		return fmt.Errorf("error subscribing %w", err)
	}

	ch := sub.Channel()

	log.Printf("Subscribed to %s channel", eventsChannel)
	go func() {
		for msg := range ch {
			r.BroadcastReceivedEvent(msg.Payload)
		}
	}()

	return nil
}

func (r *RedisEventRepository) BroadcastReceivedEvent(eventEncoded string) {
	var event GameEvent
	if err := json.Unmarshal([]byte(eventEncoded), &event); err != nil {
		log.Println("Error decoding event:", err)
		return
	}

	for _, spectator := range GetAllSpectators() {
		if err := spectator.Send(event); err != nil {
			log.Println("Error sending event to", spectator.ID, ":", err)
		}
	}
}
