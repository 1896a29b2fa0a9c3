package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/webcheckd/urlcheck/internal/config"
	"github.com/webcheckd/urlcheck/internal/httpapi"
	"github.com/webcheckd/urlcheck/internal/logging"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	api := httpapi.NewServer(logger, cfg)

	logger.Info("api_listen", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, api.Router()); err != nil {
		log.Fatal(err)
	}
}
