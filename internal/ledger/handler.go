package ledger

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tripwhizz/expenses/internal/trip"
	"github.com/tripwhizz/expenses/pkg/response"
)

// Handler handles HTTP requests for balance queries
type Handler struct {
	service *Service
}

// NewHandler creates a new ledger handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for balance endpoints, mounted under
// /trips/{tripID}/balances. The pairwise route is registered before
// the participant route so "pairwise" never parses as an ID.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Balances)
	r.Get("/pairwise", h.Pairwise)
	r.Get("/{participantID}", h.Obligations)

	return r
}

// Balances handles GET /trips/{tripID}/balances
// @Summary      Trip balances
// @Description  Net balance per participant, recomputed from the full expense and settlement history. Positive means the participant is owed money. The balances sum to zero.
// @Tags         balances
// @Produce      json
// @Param        tripID path int true "Trip ID"
// @Success      200 {object} response.APIResponse{data=[]BalanceResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{tripID}/balances [get]
func (h *Handler) Balances(w http.ResponseWriter, r *http.Request) {
	tripID, err := trip.ParseTripID(r)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}

	balances, err := h.service.Balances(r.Context(), tripID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := make([]*BalanceResponse, len(balances))
	for i, b := range balances {
		resp[i] = b.ToResponse()
	}

	response.JSON(w, http.StatusOK, resp)
}

// Pairwise handles GET /trips/{tripID}/balances/pairwise
// @Summary      Pairwise debt graph
// @Description  Every unordered pair of participants netted into at most one edge. Pairs that net to exactly zero are omitted.
// @Tags         balances
// @Produce      json
// @Param        tripID path int true "Trip ID"
// @Success      200 {object} response.APIResponse{data=[]EdgeResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{tripID}/balances/pairwise [get]
func (h *Handler) Pairwise(w http.ResponseWriter, r *http.Request) {
	tripID, err := trip.ParseTripID(r)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}

	edges, err := h.service.Edges(r.Context(), tripID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := make([]*EdgeResponse, len(edges))
	for i, e := range edges {
		resp[i] = e.ToResponse()
	}

	response.JSON(w, http.StatusOK, resp)
}

// Obligations handles GET /trips/{tripID}/balances/{participantID}
// @Summary      Participant obligations
// @Description  One participant's position against each counterparty, netted per pair. Settled counterparties are omitted.
// @Tags         balances
// @Produce      json
// @Param        tripID path int true "Trip ID"
// @Param        participantID path int true "Participant ID"
// @Success      200 {object} response.APIResponse{data=[]ObligationResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{tripID}/balances/{participantID} [get]
func (h *Handler) Obligations(w http.ResponseWriter, r *http.Request) {
	tripID, err := trip.ParseTripID(r)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}

	participantID, err := strconv.ParseInt(chi.URLParam(r, "participantID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid participant ID")
		return
	}

	obligations, err := h.service.Obligations(r.Context(), tripID, participantID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := make([]*ObligationResponse, len(obligations))
	for i, o := range obligations {
		resp[i] = o.ToResponse()
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, trip.ErrTripNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, ErrUnknownParticipant):
		response.NotFound(w, err.Error())
	default:
		response.InternalError(w, "Failed to compute balances")
	}
}
