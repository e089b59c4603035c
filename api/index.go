package handler

import (
	"net/http"
	"dronline/config"
	"dronline/di"
	"dronline/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.Handler().ServeHTTP(w, r)
}
