package domain

type RecommendationRequest struct {
	Preferences      []string `json:"preferences"`
	ExcludeProductID *int64   `json:"exclude_product_id,omitempty"`
}

type RecommendationMeta struct {
	CacheHit    bool   `json:"cache_hit"`
	GeneratedAt string `json:"generated_at"`
	TotalCount  int    `json:"total_count"`
}

type RecommendationResult struct {
	Products []Product
	CacheHit bool
}

type BatchStatus string

const (
	StatusSuccess BatchStatus = "success"
	StatusFailed  BatchStatus = "failed"
)

type BatchItemResult struct {
	Index           int         `json:"index"`
	Recommendations []Product   `json:"recommendations,omitempty"`
	Status          BatchStatus `json:"status"`
	Error           string      `json:"error,omitempty"`
	Message         string      `json:"message,omitempty"`
}

type BatchSummary struct {
	SuccessCount     int   `json:"success_count"`
	FailedCount      int   `json:"failed_count"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

type BatchMeta struct {
	GeneratedAt string `json:"generated_at"`
}

type BatchResponse struct {
	Results  []BatchItemResult `json:"results"`
	Summary  BatchSummary      `json:"summary"`
	Metadata BatchMeta         `json:"metadata"`
}
