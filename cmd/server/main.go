package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/voicereplay/voice-replay/internal/buildinfo"
	"github.com/voicereplay/voice-replay/internal/convert"
	"github.com/voicereplay/voice-replay/internal/delivery"
	"github.com/voicereplay/voice-replay/internal/domain"
	"github.com/voicereplay/voice-replay/internal/infra"
	"github.com/voicereplay/voice-replay/internal/notify"
	"github.com/voicereplay/voice-replay/internal/players"
	"github.com/voicereplay/voice-replay/internal/speech"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / DB INIT
	// =========================================================================

	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("db ping failed: %v", err)
	}
	defer db.Close()

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// INFRASTRUCTURE
	// =========================================================================

	s3Client, err := infra.NewS3Client()
	if err != nil {
		log.Fatalf("failed to init s3: %v", err)
	}

	haClient, err := players.NewHAClient()
	if err != nil {
		log.Fatalf("failed to init home assistant client: %v", err)
	}

	converter := convert.NewFFmpegConverter()

	notifyInfra, err := notify.NewInfra()
	if err != nil {
		log.Fatalf("failed to init telegram notifier: %v", err)
	}
	notifier := notify.NewService(notifyInfra)

	// =========================================================================
	// REPOSITORIES
	// =========================================================================

	clipRepo := infra.NewClipRepo(db)

	// =========================================================================
	// CLIENTS (TTS)
	// =========================================================================

	ttsService := speech.NewService("openai", map[string]speech.TTSClient{
		"openai":     speech.NewOpenAIClient(),
		"elevenlabs": speech.NewElevenLabsClient(),
	})

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	storageService := domain.NewStorageService(s3Client)
	playerService := players.NewService(haClient, players.DefaultOptions())
	clipService := domain.NewClipService(clipRepo, storageService)
	authService := domain.NewAuthService(os.Getenv("AUTH_PASSWORD"), os.Getenv("AUTH_SECRET"))

	replayService := domain.NewReplayService(
		clipRepo,
		storageService,
		playerService,
		ttsService,
		converter,
		notifier,
		domain.DefaultReplayOptions(),
	)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// HANDLERS
	replayHandler := delivery.NewReplayHandler(replayService, playerService, ttsService.Engines(), zl)
	clipHandler := delivery.NewClipHandler(clipService, storageService)
	authHandler := delivery.NewAuthHandler(authService)

	// ROUTES
	delivery.RegisterRoutes(
		r,
		replayHandler,
		clipHandler,
		authHandler,
		authService,
	)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	r.With(httputil.RecoverMiddleware).Get("/version", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte(buildinfo.Version))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "voice-replay v0.4.2 listening at " + addr,
		Service: "voice-replay",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
