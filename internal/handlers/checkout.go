package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"BOAT_CHECKOUT_BACK-END/internal/checkout"
	"BOAT_CHECKOUT_BACK-END/internal/config"
	"BOAT_CHECKOUT_BACK-END/internal/dto"
	"BOAT_CHECKOUT_BACK-END/internal/middleware"
	"BOAT_CHECKOUT_BACK-END/internal/roster"
	"BOAT_CHECKOUT_BACK-END/internal/utils"
)

// CheckoutHandler exposes the checkout form controller over HTTP
type CheckoutHandler struct {
	manager *checkout.Manager
	jwt     *config.JWTConfig
	log     *zap.Logger
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(manager *checkout.Manager, cfg *config.JWTConfig, log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{manager: manager, jwt: cfg, log: log}
}

// CreateSession handles POST /api/checkout/sessions
// @Summary Start a checkout session
// @Description Creates a checkout form holding one empty traveller and returns the session token required by every other checkout call.
// @Tags checkout
// @Produce json
// @Success 201 {object} dto.CreateSessionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/checkout/sessions [post]
func (h *CheckoutHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.manager.Create()

	token, expiresAt, err := middleware.GenerateSessionToken(s.ID(), h.jwt)
	if err != nil {
		h.log.Error("failed to sign session token", zap.String("session_id", s.ID().String()), zap.Error(err))
		_ = h.manager.Delete(s.ID())
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal error", "Could not issue session token")
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.CreateSessionResponse{
		Session:   toSessionResponse(s.Snapshot()),
		Token:     token,
		ExpiresAt: utils.FormatTimestamp(expiresAt),
	})
}

// GetSession handles GET /api/checkout/sessions/{id}
// @Summary Get checkout session
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/checkout/sessions/{id} [get]
func (h *CheckoutHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, toSessionResponse(s.Snapshot()))
}

// DeleteSession handles DELETE /api/checkout/sessions/{id}
// @Summary Discard checkout session
// @Description Cancels any pending capture or payment and forgets the session.
// @Tags checkout
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 204
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/checkout/sessions/{id} [delete]
func (h *CheckoutHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	if err := h.manager.Delete(id); err != nil {
		writeCheckoutError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddTraveller handles POST /api/checkout/sessions/{id}/travellers
// @Summary Add a traveller
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 201 {object} dto.AddTravellerResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/checkout/sessions/{id}/travellers [post]
func (h *CheckoutHandler) AddTraveller(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	t, err := s.AddTraveller()
	if err != nil {
		writeCheckoutError(w, err)
		return
	}

	snap := s.Snapshot()
	resp := dto.AddTravellerResponse{Session: toSessionResponse(snap)}
	for _, view := range snap.Travellers {
		if view.ID == t.ID {
			resp.Traveller = toTravellerResponse(view)
			break
		}
	}
	utils.WriteJSONResponse(w, http.StatusCreated, resp)
}

// UpdateTraveller handles PATCH /api/checkout/sessions/{id}/travellers/{travellerID}
// @Summary Update traveller details
// @Description Merges the provided fields. The contact number keeps digits only, up to 10. Errors of the updated fields are cleared.
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param travellerID path string true "Traveller ID"
// @Param payload body dto.UpdateTravellerRequest true "Fields to update"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/checkout/sessions/{id}/travellers/{travellerID} [patch]
func (h *CheckoutHandler) UpdateTraveller(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	travellerID, ok := pathUUID(w, r, "travellerID")
	if !ok {
		return
	}

	var req dto.UpdateTravellerRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}
	if req.Name == nil && req.ContactNumber == nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "name or contact_number is required")
		return
	}

	if _, err := s.UpdateTraveller(travellerID, roster.Patch{Name: req.Name, ContactNumber: req.ContactNumber}); err != nil {
		writeCheckoutError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, toSessionResponse(s.Snapshot()))
}

// RemoveTraveller handles DELETE /api/checkout/sessions/{id}/travellers/{travellerID}
// @Summary Remove a traveller
// @Description The last traveller cannot be removed. An applied coupon the smaller group no longer qualifies for is dropped and a notice is published.
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param travellerID path string true "Traveller ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/checkout/sessions/{id}/travellers/{travellerID} [delete]
func (h *CheckoutHandler) RemoveTraveller(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	travellerID, ok := pathUUID(w, r, "travellerID")
	if !ok {
		return
	}

	if err := s.RemoveTraveller(travellerID); err != nil {
		writeCheckoutError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, toSessionResponse(s.Snapshot()))
}

// CaptureThumbprint handles POST /api/checkout/sessions/{id}/travellers/{travellerID}/thumbprint
// @Summary Start thumbprint capture
// @Description Starts the simulated capture. It completes after the capture delay; poll the session to observe it. Repeated calls while capturing or after capture are no-ops.
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param travellerID path string true "Traveller ID"
// @Success 202 {object} dto.SessionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/checkout/sessions/{id}/travellers/{travellerID}/thumbprint [post]
func (h *CheckoutHandler) CaptureThumbprint(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	travellerID, ok := pathUUID(w, r, "travellerID")
	if !ok {
		return
	}

	if _, err := s.CaptureThumbprint(travellerID); err != nil {
		writeCheckoutError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusAccepted, toSessionResponse(s.Snapshot()))
}

// SetTravelDate handles PUT /api/checkout/sessions/{id}/travel-date
// @Summary Select or clear the travel date
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param payload body dto.SetTravelDateRequest true "Travel date, null to clear"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/checkout/sessions/{id}/travel-date [put]
func (h *CheckoutHandler) SetTravelDate(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req dto.SetTravelDateRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	var err error
	if req.TravelDate == nil {
		err = s.SetTravelDate(nil)
	} else {
		date, parseErr := utils.ParseDate(*req.TravelDate)
		if parseErr != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "travel_date must be ISO 8601 format (YYYY-MM-DD or RFC3339)")
			return
		}
		err = s.SetTravelDate(&date)
	}
	if err != nil {
		writeCheckoutError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, toSessionResponse(s.Snapshot()))
}

// ApplyCoupon handles POST /api/checkout/sessions/{id}/coupon
// @Summary Apply a coupon
// @Description An ineligible or unknown code leaves any applied coupon in place and sets the coupon error.
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param payload body dto.ApplyCouponRequest true "Coupon code"
// @Success 200 {object} dto.ApplyCouponResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/checkout/sessions/{id}/coupon [post]
func (h *CheckoutHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req dto.ApplyCouponRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	outcome, err := s.ApplyCoupon(req.Code)
	if err != nil {
		writeCheckoutError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.ApplyCouponResponse{
		Valid:   outcome.Valid,
		Message: outcome.Message,
		Session: toSessionResponse(s.Snapshot()),
	})
}

// RemoveCoupon handles DELETE /api/checkout/sessions/{id}/coupon
// @Summary Remove the applied coupon
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/checkout/sessions/{id}/coupon [delete]
func (h *CheckoutHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := s.RemoveCoupon(); err != nil {
		writeCheckoutError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, toSessionResponse(s.Snapshot()))
}

// ValidateForm handles POST /api/checkout/sessions/{id}/validate
// @Summary Validate the whole form
// @Description Replaces all field errors with a fresh validation result.
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} dto.ValidateResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/checkout/sessions/{id}/validate [post]
func (h *CheckoutHandler) ValidateForm(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	valid := s.ValidateForm()
	utils.WriteJSONResponse(w, http.StatusOK, dto.ValidateResponse{
		Valid:   valid,
		Session: toSessionResponse(s.Snapshot()),
	})
}

// Submit handles POST /api/checkout/sessions/{id}/submit
// @Summary Submit the booking
// @Description Validates the form and starts the simulated payment. The booking is confirmed and the form reset after the submit delay; a notice announces it.
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 202 {object} dto.SessionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/checkout/sessions/{id}/submit [post]
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := s.Submit(); err != nil {
		writeCheckoutError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusAccepted, toSessionResponse(s.Snapshot()))
}

// session resolves the session named by the authenticated request
func (h *CheckoutHandler) session(w http.ResponseWriter, r *http.Request) (*checkout.Session, bool) {
	id, ok := sessionID(w, r)
	if !ok {
		return nil, false
	}
	s, err := h.manager.Get(id)
	if err != nil {
		writeCheckoutError(w, err)
		return nil, false
	}
	return s, true
}

func sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	if id, ok := utils.GetSessionIDFromContext(r.Context()); ok {
		return id, true
	}
	return pathUUID(w, r, "id")
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request", name+" must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

func writeCheckoutError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkout.ErrSessionNotFound), errors.Is(err, checkout.ErrTravellerNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, checkout.ErrSessionClosed):
		utils.WriteErrorResponse(w, http.StatusGone, "Gone", err.Error())
	case errors.Is(err, checkout.ErrLastTraveller),
		errors.Is(err, checkout.ErrRosterFull),
		errors.Is(err, checkout.ErrSubmissionInProgress):
		utils.WriteErrorResponse(w, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, checkout.ErrValidationFailed):
		utils.WriteErrorResponse(w, http.StatusUnprocessableEntity, "Validation Error", "Please fill in all required fields correctly")
	case errors.Is(err, checkout.ErrDateInPast), errors.Is(err, checkout.ErrCouponCodeRequired):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal error", err.Error())
	}
}
