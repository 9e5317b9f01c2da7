package handler

import "net/http"

// POST /cart/quote
func (h *Handler) PostCartQuote(w http.ResponseWriter, r *http.Request) {
	var req CartQuoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}

	quote, err := h.service.QuoteCart(r.Context(), req.Items)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}
