package main

import (
	"log"

	"github.com/lindenb1/impress/internal/app"
	"github.com/lindenb1/impress/internal/config"
	"github.com/lindenb1/impress/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := logger.InitLogger(cfg.Env); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := app.Run(cfg); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
