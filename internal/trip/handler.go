package trip

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tripwhizz/expenses/pkg/response"
)

// Handler handles HTTP requests for trip operations
type Handler struct {
	service *Service
}

// NewHandler creates a new trip handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for trip endpoints. The expense, settlement
// and balance routers are mounted under the trip so every URL carries
// the tripID the engine scopes its history by.
func (h *Handler) Routes(expenses, settlements, balances chi.Router) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Route("/{tripID}", func(r chi.Router) {
		r.Get("/", h.GetByID)
		r.Post("/participants", h.AddParticipant)
		r.Get("/participants", h.ListParticipants)

		r.Mount("/expenses", expenses)
		r.Mount("/settlements", settlements)
		r.Mount("/balances", balances)
	})

	return r
}

// Create handles POST /trips
// @Summary      Create a new trip
// @Description  Create a trip with a single currency shared by all its expenses
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        request body CreateTripRequest true "Trip creation request"
// @Success      201 {object} response.APIResponse{data=TripResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /trips [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	trip, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrEmptyName) || errors.Is(err, ErrInvalidCurrency) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create trip")
		return
	}

	response.JSON(w, http.StatusCreated, trip.ToResponse())
}

// GetByID handles GET /trips/{tripID}
// @Summary      Get trip by ID
// @Description  Get a trip with all its participants
// @Tags         trips
// @Produce      json
// @Param        tripID path int true "Trip ID"
// @Success      200 {object} response.APIResponse{data=TripResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{tripID} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	tripID, err := ParseTripID(r)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}

	trip, participants, err := h.service.GetByIDWithParticipants(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, ErrTripNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get trip")
		return
	}

	resp := trip.ToResponse()
	resp.Participants = make([]*ParticipantResponse, len(participants))
	for i, p := range participants {
		resp.Participants[i] = p.ToResponse()
	}

	response.JSON(w, http.StatusOK, resp)
}

// AddParticipant handles POST /trips/{tripID}/participants
// @Summary      Add a participant to a trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        tripID path int true "Trip ID"
// @Param        request body AddParticipantRequest true "Participant request"
// @Success      201 {object} response.APIResponse{data=ParticipantResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{tripID}/participants [post]
func (h *Handler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	tripID, err := ParseTripID(r)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}

	var req AddParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	participant, err := h.service.AddParticipant(r.Context(), tripID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTripNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrEmptyName), errors.Is(err, ErrInvalidStatus):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to add participant")
		}
		return
	}

	response.JSON(w, http.StatusCreated, participant.ToResponse())
}

// ListParticipants handles GET /trips/{tripID}/participants
// @Summary      List trip participants
// @Tags         trips
// @Produce      json
// @Param        tripID path int true "Trip ID"
// @Success      200 {object} response.APIResponse{data=[]ParticipantResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{tripID}/participants [get]
func (h *Handler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	tripID, err := ParseTripID(r)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}

	participants, err := h.service.ListParticipants(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, ErrTripNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list participants")
		return
	}

	resp := make([]*ParticipantResponse, len(participants))
	for i, p := range participants {
		resp[i] = p.ToResponse()
	}

	response.JSON(w, http.StatusOK, resp)
}

// ParseTripID extracts the tripID URL parameter. Shared by the feature
// routers mounted under /trips/{tripID}.
func ParseTripID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "tripID"), 10, 64)
}
