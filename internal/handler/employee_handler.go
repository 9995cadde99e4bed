package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hr-registry-api/internal/domain"
	"github.com/hr-registry-api/internal/dto"
	"github.com/hr-registry-api/internal/service"
	"github.com/hr-registry-api/internal/validation"
)

type EmployeeHandler struct {
	empService service.EmployeeService
	validator  *validator.Validate
	logger     *slog.Logger
}

func NewEmployeeHandler(empService service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		empService: empService,
		validator:  validation.New(),
		logger:     logger,
	}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.empService.List(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	resp := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		resp[i] = toEmployeeResponse(&employees[i])
	}
	respondJSON(w, h.logger, http.StatusOK, resp)
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		respondError(w, r, h.logger, http.StatusBadRequest, "Invalid argument", "invalid employee id")
		return
	}

	emp, err := h.empService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimPrefix(r.URL.Path, "/employees/email/")
	email = strings.TrimSuffix(email, "/")

	emp, err := h.empService.GetByEmail(r.Context(), email)
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, h.logger, http.StatusBadRequest, "Invalid argument", "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondFieldErrors(w, r, h.logger, validation.Fields(err))
		return
	}

	emp, err := h.empService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		respondError(w, r, h.logger, http.StatusBadRequest, "Invalid argument", "invalid employee id")
		return
	}

	var req dto.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, h.logger, http.StatusBadRequest, "Invalid argument", "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondFieldErrors(w, r, h.logger, validation.Fields(err))
		return
	}

	emp, err := h.empService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		respondError(w, r, h.logger, http.StatusBadRequest, "Invalid argument", "invalid employee id")
		return
	}

	if err := h.empService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *EmployeeHandler) extractID(r *http.Request) (int64, error) {
	path := strings.TrimPrefix(r.URL.Path, "/employees/")
	path = strings.TrimSuffix(path, "/")

	parts := strings.Split(path, "/")
	if len(parts) == 0 || parts[0] == "" {
		return 0, errors.New("id is required")
	}

	return strconv.ParseInt(parts[0], 10, 64)
}

func toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:        emp.ID,
		Name:      emp.Name,
		Email:     emp.Email,
		BirthDate: emp.BirthDate.Format(validation.DateLayout),
		Age:       validation.Age(emp.BirthDate, time.Now()),
		UnitID:    emp.UnitID,
		CreatedAt: emp.CreatedAt,
		UpdatedAt: emp.UpdatedAt,
	}

	if emp.Unit != nil {
		unit := toUnitResponse(emp.Unit)
		resp.Unit = &unit
	}

	return resp
}
