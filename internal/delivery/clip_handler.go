package delivery

import (
	"errors"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"

	"github.com/voicereplay/voice-replay/internal/infra"
	"github.com/voicereplay/voice-replay/internal/ports"
)

type ClipHandler struct {
	clips   ports.ClipService
	storage ports.StorageService
}

func NewClipHandler(clips ports.ClipService, storage ports.StorageService) *ClipHandler {
	return &ClipHandler{clips: clips, storage: storage}
}

type clipDTO struct {
	ID          string  `json:"id"`
	Kind        string  `json:"kind"`
	Filename    string  `json:"filename"`
	ContentType string  `json:"content_type"`
	SizeBytes   int64   `json:"size_bytes"`
	Size        string  `json:"size"`
	URL         string  `json:"url"`
	Text        *string `json:"text,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

func clipResponse(c ports.Clip) clipDTO {
	return clipDTO{
		ID:          c.ID,
		Kind:        c.Kind,
		Filename:    c.Filename,
		ContentType: c.ContentType,
		SizeBytes:   c.SizeBytes,
		Size:        humanize.Bytes(uint64(c.SizeBytes)),
		URL:         c.URL,
		Text:        c.Text,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}

func (h *ClipHandler) List(w http.ResponseWriter, r *http.Request) {
	clips, err := h.clips.List(r.Context())
	if err != nil {
		http.Error(w, "failed to list clips: "+err.Error(), http.StatusInternalServerError)
		return
	}

	out := make([]clipDTO, 0, len(clips))
	for _, c := range clips {
		out = append(out, clipResponse(c))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"clips": out})
}

func (h *ClipHandler) Get(w http.ResponseWriter, r *http.Request) {
	clip, err := h.clips.Get(r.Context(), chi.URLParam(r, "clip_id"))
	if err != nil {
		if errors.Is(err, infra.ErrClipNotFound) {
			http.Error(w, "clip not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load clip: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeClip(w, clip)
}

func (h *ClipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.clips.Delete(r.Context(), chi.URLParam(r, "clip_id")); err != nil {
		if errors.Is(err, infra.ErrClipNotFound) {
			http.Error(w, "clip not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to delete clip: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Media streams a stored object back. Speakers pull clips through
// this route, so it stays outside the auth middleware; keys are
// uuid-based and not guessable.
func (h *ClipHandler) Media(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if key == "" {
		http.Error(w, "missing key", http.StatusBadRequest)
		return
	}

	obj, err := h.storage.OpenClip(r.Context(), key)
	if err != nil {
		http.Error(w, "clip not found", http.StatusNotFound)
		return
	}
	defer obj.Close()

	w.Header().Set("Content-Type", "audio/mpeg")
	_, _ = io.Copy(w, obj)
}
