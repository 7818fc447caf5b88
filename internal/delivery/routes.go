package delivery

import (
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/voicereplay/voice-replay/internal/ports"
)

func RegisterRoutes(
	r chi.Router,
	hReplay *ReplayHandler,
	hClips *ClipHandler,
	hAuth *AuthHandler,
	authSvc ports.AuthService,
) {
	// --- auth ---
	r.With(httputil.RecoverMiddleware).
		Post("/auth/login", hAuth.Login)

	// --- media (pulled by the speakers, no auth) ---
	r.With(httputil.RecoverMiddleware).
		Get("/media/*", hClips.Media)

	// --- protected ---
	r.Route("/api", func(pr chi.Router) {
		pr.Use(
			httputil.RecoverMiddleware,
			AuthMiddleware(authSvc),
		)

		// --- replay flow ---
		pr.With(httprate.LimitByIP(10, time.Minute)).
			Post("/voice-replay/upload", hReplay.Upload)
		pr.With(httprate.LimitByIP(10, time.Minute)).
			Post("/voice-replay/synthesize", hReplay.Synthesize)
		pr.Post("/voice-replay/replay", hReplay.Replay)
		pr.Get("/voice-replay/media_players", hReplay.ListPlayers)
		pr.Get("/voice-replay/engines", hReplay.ListEngines)

		// --- clips ---
		pr.Get("/clips", hClips.List)
		pr.Get("/clips/{clip_id}", hClips.Get)
		pr.Delete("/clips/{clip_id}", hClips.Delete)
	})
}
