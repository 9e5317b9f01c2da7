package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/actuallystonmai/storefront-assistant/internal/domain"
)

// GET /recommendations
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	var req domain.RecommendationRequest

	// Parse preferences, a comma separated list
	if prefs := r.URL.Query().Get("preferences"); prefs != "" {
		for _, p := range strings.Split(prefs, ",") {
			if p = strings.TrimSpace(p); p != "" {
				req.Preferences = append(req.Preferences, p)
			}
		}
	}

	// Parse and validate exclude
	if excludeStr := r.URL.Query().Get("exclude"); excludeStr != "" {
		exclude, err := strconv.ParseInt(excludeStr, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid exclude parameter")
			return
		}
		req.ExcludeProductID = &exclude
	}

	result, err := h.service.GetRecommendations(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	recs := nonNil(result.Products)
	resp := RecommendationResponse{
		Recommendations: recs,
		Metadata: domain.RecommendationMeta{
			CacheHit:    result.CacheHit,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			TotalCount:  len(recs),
		},
	}

	writeJSON(w, http.StatusOK, resp)
}
