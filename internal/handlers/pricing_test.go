package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BOAT_CHECKOUT_BACK-END/internal/dto"
)

func TestListCoupons(t *testing.T) {
	rec := httptest.NewRecorder()
	NewPricingHandler().ListCoupons(rec, httptest.NewRequest(http.MethodGet, "/api/coupons", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.CouponListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Coupons, 2)
	assert.Equal(t, "NEW10", resp.Coupons[0].Code)
	assert.Equal(t, "Try NEW10 (min 2 travellers) or NEW20 (min 4 travellers)", resp.Hint)
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantFinal  int64
		wantText   string
	}{
		{name: "default one traveller", query: "", wantStatus: http.StatusOK, wantFinal: 1280, wantText: "₹1,280"},
		{name: "two with discount", query: "?travellers=2&discount=100", wantStatus: http.StatusOK, wantFinal: 2460, wantText: "₹2,460"},
		{name: "zero travellers", query: "?travellers=0", wantStatus: http.StatusOK, wantFinal: 0, wantText: "₹0"},
		{name: "negative travellers", query: "?travellers=-1", wantStatus: http.StatusBadRequest},
		{name: "bad discount", query: "?discount=lots", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewPricingHandler().Quote(rec, httptest.NewRequest(http.MethodGet, "/api/pricing"+tt.query, nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			var resp dto.QuoteResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, int64(1000), resp.Pricing.TicketCostPerPerson)
			assert.Equal(t, tt.wantFinal, resp.Summary.FinalAmount)
			assert.Equal(t, tt.wantText, resp.Summary.Formatted.FinalAmount)
		})
	}
}
