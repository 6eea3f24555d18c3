package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"campussync/internal/apperr"
	"campussync/internal/config"
	"campussync/internal/queue"
	"campussync/internal/records"
	"campussync/internal/store"
)

// Worker consumes queued attendance and marks entries and writes them to the
// store. Bad payloads are logged and dropped; nothing is retried.
func main() {
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("shutdown signal received")
		cancel()
	}()

	db, err := store.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer db.Close()

	// Entry systems push directly onto the redis list, so an in-memory
	// backend would never see a message here.
	redisClient := store.NewRedis(cfg.RedisAddr)
	q := queue.NewRedisQueue(redisClient.Client, cfg.QueueKey)

	ingestor := records.NewIngestor(records.NewRepository(db.Client))

	messages, err := q.Consume(ctx)
	if err != nil {
		log.Fatalf("queue consume init failed: %v", err)
	}

	log.Println("worker started, waiting for messages...")
	for msg := range messages {
		if err := ingestor.Apply(ctx, msg); err != nil {
			switch {
			case errors.Is(err, apperr.ErrMalformedInput):
				log.Printf("dropping bad %s message: %v", msg.Type, err)
			case errors.Is(err, apperr.ErrConstraint):
				log.Printf("dropping conflicting %s message: %v", msg.Type, err)
			default:
				log.Printf("apply %s message failed: %v", msg.Type, err)
			}
			continue
		}
		log.Printf("applied %s message", msg.Type)
	}

	log.Println("worker stopped")
}
