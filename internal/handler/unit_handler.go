package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hr-registry-api/internal/domain"
	"github.com/hr-registry-api/internal/dto"
	"github.com/hr-registry-api/internal/service"
	"github.com/hr-registry-api/internal/validation"
)

type UnitHandler struct {
	unitService service.UnitService
	empService  service.EmployeeService
	validator   *validator.Validate
	logger      *slog.Logger
}

func NewUnitHandler(
	unitService service.UnitService,
	empService service.EmployeeService,
	logger *slog.Logger,
) *UnitHandler {
	return &UnitHandler{
		unitService: unitService,
		empService:  empService,
		validator:   validation.New(),
		logger:      logger,
	}
}

func (h *UnitHandler) List(w http.ResponseWriter, r *http.Request) {
	units, err := h.unitService.List(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	resp := make([]dto.UnitResponse, len(units))
	for i := range units {
		resp[i] = toUnitResponse(&units[i])
	}
	respondJSON(w, h.logger, http.StatusOK, resp)
}

func (h *UnitHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		respondError(w, r, h.logger, http.StatusBadRequest, "Invalid argument", "invalid unit id")
		return
	}

	unit, err := h.unitService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, toUnitResponse(unit))
}

func (h *UnitHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimPrefix(r.URL.Path, "/units/code/")
	code = strings.TrimSuffix(code, "/")

	unit, err := h.unitService.GetByCode(r.Context(), code)
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, toUnitResponse(unit))
}

func (h *UnitHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		respondError(w, r, h.logger, http.StatusBadRequest, "Invalid argument", "invalid unit id")
		return
	}

	employees, err := h.empService.ListByUnit(r.Context(), id)
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

func (h *UnitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.UnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, h.logger, http.StatusBadRequest, "Invalid argument", "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondFieldErrors(w, r, h.logger, validation.Fields(err))
		return
	}

	unit, err := h.unitService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, toUnitResponse(unit))
}

func (h *UnitHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		respondError(w, r, h.logger, http.StatusBadRequest, "Invalid argument", "invalid unit id")
		return
	}

	var req dto.UnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, h.logger, http.StatusBadRequest, "Invalid argument", "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondFieldErrors(w, r, h.logger, validation.Fields(err))
		return
	}

	unit, err := h.unitService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, toUnitResponse(unit))
}

func (h *UnitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		respondError(w, r, h.logger, http.StatusBadRequest, "Invalid argument", "invalid unit id")
		return
	}

	if err := h.unitService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *UnitHandler) extractID(r *http.Request) (int64, error) {
	path := strings.TrimPrefix(r.URL.Path, "/units/")
	path = strings.TrimSuffix(path, "/")
	path = strings.TrimSuffix(path, "/employees")

	parts := strings.Split(path, "/")
	if len(parts) == 0 || parts[0] == "" {
		return 0, errors.New("id is required")
	}

	return strconv.ParseInt(parts[0], 10, 64)
}

func toUnitResponse(unit *domain.Unit) dto.UnitResponse {
	return dto.UnitResponse{
		ID:        unit.ID,
		Name:      unit.Name,
		Code:      unit.Code,
		CreatedAt: unit.CreatedAt,
		UpdatedAt: unit.UpdatedAt,
	}
}
