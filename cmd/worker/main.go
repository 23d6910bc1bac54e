package main

import (
	"context"
	_ "expvar"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"editora_prisma/internal/adapter/events"
	"editora_prisma/internal/adapter/persistence/repository"
	"editora_prisma/internal/infrastructure/config"
	"editora_prisma/internal/infrastructure/database"
	"editora_prisma/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
)

// The worker consumes the quote and client table streams and runs the
// background side of the domain: quote numbering, client numbering and the
// approval cascade.
func main() {
	cfg, err := config.New(".env")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ddb := database.ConnectDynamoDB()
	streams := database.ConnectDynamoDBStreams()

	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	clientRepo := repository.NewClientDynamoRepository(ddb)
	counterRepo := repository.NewCounterDynamoRepository(ddb)
	approvalWriter := repository.NewApprovalDynamoWriter(ddb)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo, counterRepo)
	approvalUseCase := usecase.NewApprovalUseCase(approvalWriter)

	quoteHandler := events.NewQuoteEventHandler(quoteUseCase, approvalUseCase)
	clientHandler := events.NewClientEventHandler(clientUseCase)

	consumer := events.NewConsumer(ddb, streams, cfg.PollInterval).
		Handle(cfg.QuotesTable, quoteHandler.OnRecord).
		Handle(cfg.ClientsTable, clientHandler.OnRecord).
		Consume(ctx)

	// Failure counters under /debug/vars.
	go func() {
		addr := fmt.Sprintf(":%d", cfg.MetricsPort)
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Printf("[worker][main] metrics listener stopped err=%v", err)
		}
	}()

	log.Printf("[worker][main] consuming tables=%s,%s poll=%s", cfg.QuotesTable, cfg.ClientsTable, cfg.PollInterval)

	<-ctx.Done()
	consumer.Close()
	log.Printf("[worker][main] shutdown complete")
}
