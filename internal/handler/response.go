package handler

import "github.com/actuallystonmai/storefront-assistant/internal/domain"

type ProductListResponse struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
}

type RecommendationResponse struct {
	Recommendations []domain.Product          `json:"recommendations"`
	Metadata        domain.RecommendationMeta `json:"metadata"`
}

type BoughtTogetherResponse struct {
	ProductID int64            `json:"product_id"`
	Products  []domain.Product `json:"products"`
}

type BatchRequest struct {
	Requests []domain.RecommendationRequest `json:"requests"`
}

type ChatRequest struct {
	Message   string            `json:"message"`
	User      *domain.User      `json:"user,omitempty"`
	Cart      []domain.CartLine `json:"cart,omitempty"`
	CartTotal *float64          `json:"cart_total,omitempty"`
}

type ChatReply struct {
	ID string `json:"id"`
	domain.ChatResponse
	Timestamp string `json:"timestamp"`
}

type WelcomeResponse struct {
	Messages []ChatReply `json:"messages"`
}

type CartQuoteRequest struct {
	Items []domain.CartLine `json:"items"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
