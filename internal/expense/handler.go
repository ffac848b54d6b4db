package expense

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tripwhizz/expenses/internal/trip"
	"github.com/tripwhizz/expenses/pkg/response"
)

// Handler handles HTTP requests for expense operations
type Handler struct {
	service *Service
}

// NewHandler creates a new expense handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for expense endpoints, mounted under
// /trips/{tripID}/expenses
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.ListByTrip)
	r.Get("/{expenseID}", h.GetByID)
	r.Delete("/{expenseID}", h.Delete)

	return r
}

// Create handles POST /trips/{tripID}/expenses
// @Summary      Create a new expense
// @Description  Create an expense whose shares are computed by the equal, percentage, exact or shares strategy. A request that fails validation returns every violation, not just the first.
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        tripID path int true "Trip ID"
// @Param        request body CreateExpenseRequest true "Expense creation request"
// @Success      201 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{tripID}/expenses [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	tripID, err := trip.ParseTripID(r)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}

	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	expense, err := h.service.Create(r.Context(), tripID, &req)
	if err != nil {
		var violations ValidationErrors
		switch {
		case errors.As(err, &violations):
			response.ValidationFailed(w, violations.Messages())
		case errors.Is(err, trip.ErrTripNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Failed to create expense")
		}
		return
	}

	response.JSON(w, http.StatusCreated, expense.ToResponse())
}

// ListByTrip handles GET /trips/{tripID}/expenses
// @Summary      List trip expenses
// @Description  List a trip's expenses with their shares, newest first
// @Tags         expenses
// @Produce      json
// @Param        tripID path int true "Trip ID"
// @Success      200 {object} response.APIResponse{data=[]ExpenseResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{tripID}/expenses [get]
func (h *Handler) ListByTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := trip.ParseTripID(r)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}

	expenses, err := h.service.ListByTrip(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, trip.ErrTripNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list expenses")
		return
	}

	resp := make([]*ExpenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = e.ToResponse()
	}

	response.JSON(w, http.StatusOK, resp)
}

// GetByID handles GET /trips/{tripID}/expenses/{expenseID}
// @Summary      Get expense by ID
// @Tags         expenses
// @Produce      json
// @Param        tripID path int true "Trip ID"
// @Param        expenseID path int true "Expense ID"
// @Success      200 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{tripID}/expenses/{expenseID} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	tripID, err := trip.ParseTripID(r)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}
	expenseID, err := strconv.ParseInt(chi.URLParam(r, "expenseID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid expense ID")
		return
	}

	expense, err := h.service.GetByID(r.Context(), tripID, expenseID)
	if err != nil {
		if errors.Is(err, ErrExpenseNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get expense")
		return
	}

	response.JSON(w, http.StatusOK, expense.ToResponse())
}

// Delete handles DELETE /trips/{tripID}/expenses/{expenseID}
// @Summary      Delete an expense
// @Description  Remove an expense and its shares from the trip history
// @Tags         expenses
// @Param        tripID path int true "Trip ID"
// @Param        expenseID path int true "Expense ID"
// @Success      204 "No Content"
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{tripID}/expenses/{expenseID} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	tripID, err := trip.ParseTripID(r)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}
	expenseID, err := strconv.ParseInt(chi.URLParam(r, "expenseID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid expense ID")
		return
	}

	if err := h.service.Delete(r.Context(), tripID, expenseID); err != nil {
		if errors.Is(err, ErrExpenseNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete expense")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
