package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/hr-registry-api/internal/domain"
	"github.com/hr-registry-api/internal/dto"
	"github.com/hr-registry-api/internal/repository"
	"github.com/hr-registry-api/internal/validation"
)

// EmployeeService defines the business operations for employees
type EmployeeService interface {
	List(ctx context.Context, name string) ([]domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	ListByUnit(ctx context.Context, unitID int64) ([]domain.Employee, error)
	Create(ctx context.Context, req *dto.EmployeeRequest) (*domain.Employee, error)
	Update(ctx context.Context, id int64, req *dto.EmployeeRequest) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type employeeService struct {
	empRepo repository.EmployeeRepository
	units   UnitService
	logger  *slog.Logger
}

// NewEmployeeService creates a new service instance. Unit references are
// resolved through the unit service so unknown units surface the same
// NotFound the unit endpoints produce.
func NewEmployeeService(empRepo repository.EmployeeRepository, units UnitService, logger *slog.Logger) EmployeeService {
	return &employeeService{
		empRepo: empRepo,
		units:   units,
		logger:  logger,
	}
}

func (s *employeeService) List(ctx context.Context, name string) ([]domain.Employee, error) {
	return s.empRepo.List(ctx, name)
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.empRepo.GetByID(ctx, id)
}

func (s *employeeService) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return s.empRepo.GetByEmail(ctx, email)
}

func (s *employeeService) ListByUnit(ctx context.Context, unitID int64) ([]domain.Employee, error) {
	if _, err := s.units.GetByID(ctx, unitID); err != nil {
		return nil, err
	}
	return s.empRepo.ListByUnit(ctx, unitID)
}

func (s *employeeService) Create(ctx context.Context, req *dto.EmployeeRequest) (*domain.Employee, error) {
	if req == nil {
		return nil, domain.NewInvalidArgument("employee must not be nil")
	}

	birthDate, err := s.validate(ctx, req, nil)
	if err != nil {
		return nil, err
	}

	unit, err := s.units.GetByID(ctx, req.UnitID)
	if err != nil {
		return nil, err
	}

	emp := &domain.Employee{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		BirthDate: birthDate,
		UnitID:    unit.ID,
		Unit:      unit,
	}

	if err := s.empRepo.Create(ctx, emp); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.NewConflict("duplicate email: %s", emp.Email)
		}
		return nil, err
	}

	s.logger.Info("employee created", slog.Int64("id", emp.ID), slog.String("email", emp.Email))
	return emp, nil
}

func (s *employeeService) Update(ctx context.Context, id int64, req *dto.EmployeeRequest) (*domain.Employee, error) {
	if req == nil {
		return nil, domain.NewInvalidArgument("employee must not be nil")
	}

	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	birthDate, err := s.validate(ctx, req, &id)
	if err != nil {
		return nil, err
	}

	// Re-resolve the unit only when the reference changed.
	if emp.UnitID != req.UnitID {
		unit, err := s.units.GetByID(ctx, req.UnitID)
		if err != nil {
			return nil, err
		}
		emp.UnitID = unit.ID
		emp.Unit = unit
	}

	emp.Name = strings.TrimSpace(req.Name)
	emp.Email = strings.TrimSpace(req.Email)
	emp.BirthDate = birthDate
	emp.UpdatedAt = time.Now()

	if err := s.empRepo.Update(ctx, emp); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.NewConflict("duplicate email: %s", emp.Email)
		}
		return nil, err
	}

	s.logger.Info("employee updated", slog.Int64("id", emp.ID), slog.String("email", emp.Email))
	return emp, nil
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.empRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("employee deleted", slog.Int64("id", id), slog.String("email", emp.Email))
	return nil
}

// validate runs the business checks shared by create and update: email
// uniqueness (excluding the employee itself on update), age bounds, and the
// presence of a unit reference.
func (s *employeeService) validate(ctx context.Context, req *dto.EmployeeRequest, excludeID *int64) (time.Time, error) {
	email := strings.TrimSpace(req.Email)

	exists, err := s.empRepo.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return time.Time{}, err
	}
	if exists {
		return time.Time{}, domain.NewConflict("duplicate email: %s", email)
	}

	birthDate, err := time.Parse(validation.DateLayout, req.BirthDate)
	if err != nil {
		return time.Time{}, domain.NewInvalidArgument("birth_date must be a date in format %s", validation.DateLayout)
	}

	rule := validation.DefaultAgeRule
	if !rule.Valid(&birthDate) {
		age := validation.Age(birthDate, time.Now())
		return time.Time{}, domain.NewInvalidArgument("invalid age: %d years; must be between %d and %d", age, rule.Min, rule.Max)
	}

	if req.UnitID <= 0 {
		return time.Time{}, domain.NewInvalidArgument("unit is required")
	}

	return birthDate, nil
}
