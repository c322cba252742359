package main

import (
	"context"
	"log"
	"os"

	"github.com/rbpata/sweetshop/internal/shop/app"
)

func main() {
	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	runErr := application.Run(context.Background(), os.Args[1:])
	_ = application.Close()

	if runErr != nil {
		// User-facing feedback was already printed; just signal failure.
		os.Exit(1)
	}
}
