package main

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/SsandrockK/youtube-transcript-extractor/internal/config"
	"github.com/SsandrockK/youtube-transcript-extractor/internal/handler"
	"github.com/SsandrockK/youtube-transcript-extractor/internal/middleware"
	"github.com/SsandrockK/youtube-transcript-extractor/internal/router"
	"github.com/SsandrockK/youtube-transcript-extractor/internal/service"
	"github.com/SsandrockK/youtube-transcript-extractor/internal/youtube"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "ytx-api")
	handler.InitMetrics()

	yt := youtube.NewClient(cfg.UpstreamTimeout)
	yt.OnUpstream = handler.ObserveUpstream

	svc := service.NewExtractService(yt)

	app := fiber.New(fiber.Config{
		AppName:      "YouTube Transcript Extractor API",
		ServerHeader: "ytx",
	})

	router.Setup(app, &router.Handlers{
		Extract: handler.NewExtractHandler(svc, cfg.DefaultLanguages),
		Health:  handler.NewHealthHandler("https://www.youtube.com"),
	}, cfg.CORSOrigins)

	log.Printf("transcript extractor backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
