package main

import (
	"flag"
	"log"

	"likebike_backend/internal/app"
	"likebike_backend/internal/config"
	"likebike_backend/pkg/logger"
)

func main() {
	mode := flag.String("mode", "", "override server mode (debug|release|demo)")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *mode != "" {
		cfg.Server.Mode = *mode
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
