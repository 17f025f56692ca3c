package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"BOAT_CHECKOUT_BACK-END/internal/dto"
	"BOAT_CHECKOUT_BACK-END/internal/pricing"
	"BOAT_CHECKOUT_BACK-END/internal/utils"
)

// PricingHandler serves the price list, quotes and coupon catalog
type PricingHandler struct{}

// NewPricingHandler creates a new PricingHandler
func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

// ListCoupons handles GET /api/coupons
// @Summary List coupons
// @Tags pricing
// @Produce json
// @Success 200 {object} dto.CouponListResponse
// @Router /api/coupons [get]
func (h *PricingHandler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	catalog := pricing.Catalog()
	items := make([]dto.CouponItem, 0, len(catalog))
	hints := make([]string, 0, len(catalog))
	for _, c := range catalog {
		items = append(items, dto.CouponItem{
			Code:          c.Code,
			MinTravellers: c.MinTravellers,
			Discount:      c.Discount,
			Hint:          c.Hint(),
		})
		hints = append(hints, c.Hint())
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.CouponListResponse{
		Coupons: items,
		Hint:    "Try " + strings.Join(hints, " or "),
	})
}

// Quote handles GET /api/pricing
// @Summary Price quote
// @Tags pricing
// @Produce json
// @Param travellers query int false "number of travellers (default 1)"
// @Param discount query int false "discount in rupees (default 0)"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/pricing [get]
func (h *PricingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	travellers := 1
	if v := q.Get("travellers"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "travellers must be a non-negative integer")
			return
		}
		travellers = n
	}

	var discount int64
	if v := q.Get("discount"); v != "" {
		d, err := strconv.ParseInt(v, 10, 64)
		if err != nil || d < 0 {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "discount must be a non-negative integer")
			return
		}
		discount = d
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.QuoteResponse{
		Pricing: dto.PricingDetailsResponse{
			TicketCostPerPerson:     pricing.Pricing.TicketCostPerPerson,
			LifeJacketCostPerPerson: pricing.Pricing.LifeJacketCostPerPerson,
			GSTPercentage:           pricing.Pricing.GSTPercentage,
		},
		Summary: toPriceSummaryResponse(pricing.Calculate(travellers, discount)),
	})
}
