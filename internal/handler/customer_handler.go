package handler

import (
	"encoding/json"
	"net/http"

	"bakery-api/internal/model"
	"bakery-api/internal/service"

	"github.com/rs/zerolog"
)

// CustomerHandler handles customer-related HTTP requests.
type CustomerHandler struct {
	service service.CustomerService
	logger  zerolog.Logger
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(service service.CustomerService, logger zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		logger:  logger.With().Str("handler", "customer").Logger(),
	}
}

// Create handles POST /api/customers requests.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	customer, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "failed to create customer", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, customer)
}

// GetAll handles GET /api/customers requests.
func (h *CustomerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to retrieve customers", h.logger)
		return
	}

	if customers == nil {
		customers = []model.Customer{}
	}

	writeJSON(w, http.StatusOK, customers)
}

// GetByID handles GET /api/customers/{id} requests.
func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger)
	if !ok {
		return
	}

	customer, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve customer", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// Update handles PUT /api/customers/{id} requests.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger)
	if !ok {
		return
	}

	var req model.CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	customer, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err, "failed to update customer", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// Delete handles DELETE /api/customers/{id} requests.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "failed to delete customer", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "customer deleted"})
}
