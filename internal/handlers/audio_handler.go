package handlers

import (
	"net/http"

	"chordcrack/internal/audio"
)

// AudioHandler streams chord hint clips to the client
type AudioHandler struct {
	library *audio.Library
}

// NewAudioHandler creates a new audio handler
func NewAudioHandler(library *audio.Library) *AudioHandler {
	return &AudioHandler{library: library}
}

// Clip handles GET /api/audio/{asset}
func (h *AudioHandler) Clip(w http.ResponseWriter, r *http.Request) {
	asset := r.PathValue("asset")

	path, err := h.library.Path(asset)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Audio clip not found", "", nil)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeFile(w, r, path)
}
