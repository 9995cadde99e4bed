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
)

// UnitService defines the business operations for organizational units
type UnitService interface {
	List(ctx context.Context, name string) ([]domain.Unit, error)
	GetByID(ctx context.Context, id int64) (*domain.Unit, error)
	GetByCode(ctx context.Context, code string) (*domain.Unit, error)
	Create(ctx context.Context, req *dto.UnitRequest) (*domain.Unit, error)
	Update(ctx context.Context, id int64, req *dto.UnitRequest) (*domain.Unit, error)
	Delete(ctx context.Context, id int64) error
}

type unitService struct {
	unitRepo repository.UnitRepository
	empRepo  repository.EmployeeRepository
	logger   *slog.Logger
}

// NewUnitService creates a new service instance
func NewUnitService(unitRepo repository.UnitRepository, empRepo repository.EmployeeRepository, logger *slog.Logger) UnitService {
	return &unitService{
		unitRepo: unitRepo,
		empRepo:  empRepo,
		logger:   logger,
	}
}

func (s *unitService) List(ctx context.Context, name string) ([]domain.Unit, error) {
	return s.unitRepo.List(ctx, name)
}

func (s *unitService) GetByID(ctx context.Context, id int64) (*domain.Unit, error) {
	return s.unitRepo.GetByID(ctx, id)
}

func (s *unitService) GetByCode(ctx context.Context, code string) (*domain.Unit, error) {
	return s.unitRepo.GetByCode(ctx, code)
}

func (s *unitService) Create(ctx context.Context, req *dto.UnitRequest) (*domain.Unit, error) {
	if req == nil {
		return nil, domain.NewInvalidArgument("unit must not be nil")
	}

	code := normalizeCode(req.Code)

	// Advisory check; the unique index on code is the authoritative backstop.
	exists, err := s.unitRepo.ExistsByCode(ctx, code, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewConflict("duplicate code: %s", code)
	}

	unit := &domain.Unit{
		Name: strings.TrimSpace(req.Name),
		Code: code,
	}

	if err := s.unitRepo.Create(ctx, unit); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.NewConflict("duplicate code: %s", code)
		}
		return nil, err
	}

	s.logger.Info("unit created", slog.Int64("id", unit.ID), slog.String("code", unit.Code))
	return unit, nil
}

func (s *unitService) Update(ctx context.Context, id int64, req *dto.UnitRequest) (*domain.Unit, error) {
	if req == nil {
		return nil, domain.NewInvalidArgument("unit must not be nil")
	}

	unit, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	code := normalizeCode(req.Code)

	exists, err := s.unitRepo.ExistsByCode(ctx, code, &id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewConflict("duplicate code: %s", code)
	}

	unit.Name = strings.TrimSpace(req.Name)
	unit.Code = code
	unit.UpdatedAt = time.Now()

	if err := s.unitRepo.Update(ctx, unit); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.NewConflict("duplicate code: %s", code)
		}
		return nil, err
	}

	s.logger.Info("unit updated", slog.Int64("id", unit.ID), slog.String("code", unit.Code))
	return unit, nil
}

func (s *unitService) Delete(ctx context.Context, id int64) error {
	unit, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.empRepo.CountByUnit(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.NewConflict("cannot delete unit '%s': %d employee(s) attached", unit.Code, count)
	}

	if err := s.unitRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("unit deleted", slog.Int64("id", id), slog.String("code", unit.Code))
	return nil
}

// normalizeCode uppercases a unit code before every check and write.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
