package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

func (h *Handlers) ListCatalog(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Catalog.Entries(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("catalog: load")
		writeError(w, http.StatusBadGateway, "catalog unavailable", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": entries})
}

func (h *Handlers) CurrentRate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Rates.Current())
}
