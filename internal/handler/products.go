package handler

import (
	"net/http"
	"strconv"

	"github.com/actuallystonmai/storefront-assistant/internal/domain"
)

// GET /products
func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := domain.Filters{
		Category: q.Get("category"),
		MinPrice: parsePrice(q.Get("minPrice")),
		MaxPrice: parsePrice(q.Get("maxPrice")),
	}

	products, err := h.service.Search(r.Context(), q.Get("search"), filters)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	products = nonNil(products)
	writeJSON(w, http.StatusOK, ProductListResponse{Products: products, Total: len(products)})
}

// GET /products/{productID}
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid productID parameter")
		return
	}

	p, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// GET /products/{productID}/bought-together
func (h *Handler) GetBoughtTogether(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid productID parameter")
		return
	}

	writeJSON(w, http.StatusOK, BoughtTogetherResponse{
		ProductID: id,
		Products:  h.service.FrequentlyBoughtWith(r.Context(), id),
	})
}

// parsePrice ignores malformed input, leaving the bound unset.
func parsePrice(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
