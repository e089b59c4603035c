package main

import (
	"context"

	"dronline/config"
	"dronline/di"
	"dronline/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	relay := di.InitializeRelay()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go relay.Run(ctx)

	http := di.InitializeService()
	http.Serve()
}
