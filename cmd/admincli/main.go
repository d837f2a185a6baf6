package main

import (
	"context"
	"log"

	"github.com/bloodlink/admincli/internal/cli"
	"github.com/bloodlink/admincli/internal/config"
)

func main() {
	cfg := config.Load()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
