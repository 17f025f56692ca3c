package handlers

import (
	"net/http"

	"BOAT_CHECKOUT_BACK-END/internal/checkout"
	"BOAT_CHECKOUT_BACK-END/internal/dto"
	"BOAT_CHECKOUT_BACK-END/internal/utils"
)

// NoticesHandler delivers the toast notifications raised by a checkout session
type NoticesHandler struct {
	manager *checkout.Manager
}

// NewNoticesHandler creates a new NoticesHandler
func NewNoticesHandler(manager *checkout.Manager) *NoticesHandler {
	return &NoticesHandler{manager: manager}
}

// ListNotices handles GET /api/checkout/sessions/{id}/notices
// @Summary Drain session notices
// @Description Returns the notices raised since the last call (coupon removed, validation error, booking confirmed) and forgets them.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} dto.NoticesResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/checkout/sessions/{id}/notices [get]
func (h *NoticesHandler) ListNotices(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	s, err := h.manager.Get(id)
	if err != nil {
		writeCheckoutError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.NoticesResponse{
		Notices: toNoticeItems(s.DrainNotices()),
	})
}
