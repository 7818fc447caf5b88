package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	json "github.com/goccy/go-json"

	"github.com/voicereplay/voice-replay/internal/ports"
)

type ReplayHandler struct {
	replay  ports.ReplayService
	players ports.PlayerService
	engines []string
	log     *logger.ZapLogger
}

func NewReplayHandler(replay ports.ReplayService, players ports.PlayerService, engines []string, log *logger.ZapLogger) *ReplayHandler {
	return &ReplayHandler{
		replay:  replay,
		players: players,
		engines: engines,
		log:     log,
	}
}

func (h *ReplayHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		http.Error(w, "invalid multipart: "+err.Error(), http.StatusBadRequest)
		return
	}

	entityID := r.FormValue("entity_id")
	if entityID == "" {
		http.Error(w, "missing entity_id", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		http.Error(w, "missing audio: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	clip, err := h.replay.UploadAndPlay(r.Context(), ports.UploadInput{
		EntityID:    entityID,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Audio:       file,
	})
	if err != nil {
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "upload and play failed",
			Service: "voice-replay",
			Error:   err,
		})
		http.Error(w, "failed to play recording: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeClip(w, clip)
}

func (h *ReplayHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text     string `json:"text"`
		Engine   string `json:"engine"`
		EntityID string `json:"entity_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "missing text", http.StatusBadRequest)
		return
	}
	if req.EntityID == "" {
		http.Error(w, "missing entity_id", http.StatusBadRequest)
		return
	}

	clip, err := h.replay.SynthesizeAndPlay(r.Context(), req.Text, req.Engine, req.EntityID)
	if err != nil {
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "synthesize and play failed",
			Service: "voice-replay",
			Error:   err,
		})
		http.Error(w, "failed to synthesize: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeClip(w, clip)
}

func (h *ReplayHandler) Replay(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClipID   string `json:"clip_id"`
		EntityID string `json:"entity_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.ClipID == "" || req.EntityID == "" {
		http.Error(w, "missing clip_id or entity_id", http.StatusBadRequest)
		return
	}

	if err := h.replay.Replay(r.Context(), req.ClipID, req.EntityID); err != nil {
		http.Error(w, "failed to replay: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "playing"})
}

func (h *ReplayHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.players.List(r.Context())
	if err != nil {
		http.Error(w, "failed to list media players: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"players": players})
}

func (h *ReplayHandler) ListEngines(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"engines": h.engines})
}

func writeClip(w http.ResponseWriter, clip ports.Clip) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(clipResponse(clip))
}
