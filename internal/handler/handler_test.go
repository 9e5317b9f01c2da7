package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/actuallystonmai/storefront-assistant/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	assert.Nil(t, parsePrice(""))
	assert.Nil(t, parsePrice("ten"))
	require.NotNil(t, parsePrice("12.5"))
	assert.Equal(t, 12.5, *parsePrice("12.5"))
}

func TestWriteServiceError(t *testing.T) {
	h := &Handler{log: zerolog.Nop()}

	tests := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("product 9: %w", domain.ErrProductNotFound), http.StatusNotFound, "product_not_found"},
		{fmt.Errorf("line: %w", domain.ErrInvalidQuantity), http.StatusBadRequest, "invalid_parameter"},
		{fmt.Errorf("search: %w", context.DeadlineExceeded), http.StatusServiceUnavailable, "request_timeout"},
		{fmt.Errorf("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.writeServiceError(rec, tt.err)

		assert.Equal(t, tt.status, rec.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, tt.code, resp.Error)
	}
}
