package main

import (
	"os"

	"github.com/google/uuid"

	"github.com/cx-tal-miterani/flight-reservation-cli/internal/booking"
	"github.com/cx-tal-miterani/flight-reservation-cli/internal/cli"
	"github.com/cx-tal-miterani/flight-reservation-cli/internal/config"
	"github.com/cx-tal-miterani/flight-reservation-cli/internal/storage"
	"github.com/cx-tal-miterani/flight-reservation-cli/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	log := logger.NewLogger(cfg.LogLevel).With("run_id", uuid.New().String()[:8])

	store := storage.NewStore(cfg.FlightsFile, cfg.BookingsFile)

	svc, err := booking.NewService(store, booking.WithLogger(log))
	if err != nil {
		log.Fatal("failed to initialize reservation service", "error", err)
	}

	cli.New(svc, os.Stdin, os.Stdout).Run()
}
