package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MalithGihan/assetd/internal/config"
	"github.com/MalithGihan/assetd/internal/httpapi"
	"github.com/MalithGihan/assetd/internal/logging"
	"github.com/MalithGihan/assetd/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	st := store.New(cfg,
		store.WithHTTPClient(&http.Client{Timeout: cfg.DownloadTimeout}),
		store.WithVoiceBaseURL(cfg.VoiceBaseURL),
		store.WithLogger(log),
	)

	log.Info("assetd listening",
		"port", cfg.Port,
		"voices_root", cfg.VoicesRoot(),
		"images_root", cfg.ImagesRoot())
	if err := http.ListenAndServe(":"+cfg.Port, httpapi.NewRouter(st, log)); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
