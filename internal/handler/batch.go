package handler

import (
	"net/http"
)

// POST /recommendations/batch
func (h *Handler) PostBatchRecommendations(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}
	if len(req.Requests) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "requests must not be empty")
		return
	}

	result, err := h.service.BatchRecommend(r.Context(), req.Requests)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
