package handlers

import (
	"BOAT_CHECKOUT_BACK-END/internal/checkout"
	"BOAT_CHECKOUT_BACK-END/internal/dto"
	"BOAT_CHECKOUT_BACK-END/internal/pricing"
	"BOAT_CHECKOUT_BACK-END/internal/utils"
)

func toPriceSummaryResponse(s pricing.Summary) dto.PriceSummaryResponse {
	return dto.PriceSummaryResponse{
		NumberOfTravellers: s.NumberOfTravellers,
		TicketTotal:        s.TicketTotal,
		GSTAmount:          s.GSTAmount,
		LifeJacketTotal:    s.LifeJacketTotal,
		Discount:           s.Discount,
		FinalAmount:        s.FinalAmount,
		Formatted: dto.FormattedPriceSummary{
			TicketTotal:     pricing.FormatINR(s.TicketTotal),
			GSTAmount:       pricing.FormatINR(s.GSTAmount),
			LifeJacketTotal: pricing.FormatINR(s.LifeJacketTotal),
			Discount:        pricing.FormatINR(s.Discount),
			FinalAmount:     pricing.FormatINR(s.FinalAmount),
		},
	}
}

func toTravellerResponse(t checkout.TravellerView) dto.TravellerResponse {
	return dto.TravellerResponse{
		ID:                 t.ID.String(),
		Name:               t.Name,
		ContactNumber:      t.ContactNumber,
		ThumbprintCaptured: t.ThumbprintCaptured,
		CaptureState:       string(t.Capture),
		Errors: dto.TravellerErrorsResponse{
			Name:          t.Errors.Name,
			ContactNumber: t.Errors.ContactNumber,
			Thumbprint:    t.Errors.Thumbprint,
		},
	}
}

func toSessionResponse(snap checkout.Snapshot) dto.SessionResponse {
	travellers := make([]dto.TravellerResponse, 0, len(snap.Travellers))
	for _, t := range snap.Travellers {
		travellers = append(travellers, toTravellerResponse(t))
	}

	resp := dto.SessionResponse{
		ID:            snap.ID.String(),
		Travellers:    travellers,
		MinTravelDate: utils.FormatDate(snap.MinTravelDate),
		DateError:     snap.DateError,
		CouponError:   snap.CouponError,
		Summary:       toPriceSummaryResponse(snap.Summary),
		State:         string(snap.State),

		AllThumbprintsCaptured: snap.AllThumbprintsCaptured,
		IsFormValid:            snap.IsFormValid,
		CanSubmit:              snap.CanSubmit,
		CanRemoveTraveller:     snap.CanRemoveTraveller,
		IsSubmitting:           snap.Submitting,
	}
	if snap.TravelDate != nil {
		d := utils.FormatDate(*snap.TravelDate)
		resp.TravelDate = &d
	}
	if snap.AppliedCoupon != "" {
		code := snap.AppliedCoupon
		resp.AppliedCoupon = &code
	}
	return resp
}

func toNoticeItems(notices []checkout.Notice) []dto.NoticeItem {
	items := make([]dto.NoticeItem, 0, len(notices))
	for _, n := range notices {
		items = append(items, dto.NoticeItem{
			Title:       n.Title,
			Description: n.Description,
			Severity:    string(n.Severity),
			CreatedAt:   utils.FormatTimestamp(n.CreatedAt),
		})
	}
	return items
}
