package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/hopeconnect/internal/admin"
	"github.com/dmitrijs2005/hopeconnect/internal/logging"
	"github.com/dmitrijs2005/hopeconnect/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := admin.NewApp(ctx, cfg, logging.New(cfg.LogFormat, os.Stderr), os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}

	err = app.Run(ctx, os.Args[1:])
	app.Close()

	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

}
