package main

import (
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"

	"leetrelay/api/internal/config"
	"leetrelay/api/internal/gemini"
	"leetrelay/api/internal/handle"
	"leetrelay/api/internal/leetcode"
	"leetrelay/api/internal/relay"
)

func main() {
	cfg := config.Load()

	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		cfg.Port = p
	} else if strings.TrimSpace(cfg.Port) == "" {
		cfg.Port = "8000"
	}

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	questions := leetcode.New(leetcode.Options{
		BaseURL: cfg.LeetCodeBaseURL,
		Log:     log.Named("leetcode"),
	})
	generator := gemini.New(gemini.Options{
		BaseURL: cfg.GeminiBaseURL,
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		Log:     log.Named("gemini"),
	})

	svc := relay.NewService(questions, generator, log.Named("relay"))
	h := handle.New(svc, log.Named("handle"))

	mux := http.NewServeMux()
	h.Register(mux)

	addr := ":" + cfg.Port
	log.Info("leetrelay listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, handle.Logging(log.Named("http"), mux)); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
