package settlement

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripwhizz/expenses/internal/trip"
	"github.com/tripwhizz/expenses/pkg/response"
)

// Handler handles HTTP requests for settlement operations
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settlement endpoints, mounted under
// /trips/{tripID}/settlements
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.ListByTrip)

	return r
}

// Create handles POST /trips/{tripID}/settlements
// @Summary      Record a settlement
// @Description  Record a payment between two participants. The amount is not capped against the current balance; payments are facts and balances are re-derived from the full history.
// @Tags         settlements
// @Accept       json
// @Produce      json
// @Param        tripID path int true "Trip ID"
// @Param        request body CreateSettlementRequest true "Settlement request"
// @Success      201 {object} response.APIResponse{data=SettlementResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{tripID}/settlements [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	tripID, err := trip.ParseTripID(r)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}

	var req CreateSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	settlement, err := h.service.Create(r.Context(), tripID, &req)
	if err != nil {
		switch {
		case errors.Is(err, trip.ErrTripNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrSelfSettlement),
			errors.Is(err, ErrNonPositiveAmount),
			errors.Is(err, ErrInvalidAmount),
			errors.Is(err, ErrNotParticipant):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to create settlement")
		}
		return
	}

	response.JSON(w, http.StatusCreated, settlement.ToResponse())
}

// ListByTrip handles GET /trips/{tripID}/settlements
// @Summary      List trip settlements
// @Description  List a trip's settlements, newest first
// @Tags         settlements
// @Produce      json
// @Param        tripID path int true "Trip ID"
// @Success      200 {object} response.APIResponse{data=[]SettlementResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{tripID}/settlements [get]
func (h *Handler) ListByTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := trip.ParseTripID(r)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}

	settlements, err := h.service.ListByTrip(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, trip.ErrTripNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list settlements")
		return
	}

	resp := make([]*SettlementResponse, len(settlements))
	for i, s := range settlements {
		resp[i] = s.ToResponse()
	}

	response.JSON(w, http.StatusOK, resp)
}
