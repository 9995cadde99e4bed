package repository

import (
	"context"
	"errors"

	"github.com/hr-registry-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EmployeeRepository defines the persistence port for employees
type EmployeeRepository interface {
	List(ctx context.Context, name string) ([]domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	ListByUnit(ctx context.Context, unitID int64) ([]domain.Employee, error)
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id int64) error
	ExistsByEmail(ctx context.Context, email string, excludeID *int64) (bool, error)
	CountByUnit(ctx context.Context, unitID int64) (int64, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new repository instance
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) List(ctx context.Context, name string) ([]domain.Employee, error) {
	var employees []domain.Employee
	query := r.db.WithContext(ctx).Preload("Unit")
	if name != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%")
	}
	err := query.Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).Preload("Unit").First(&emp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("Employee", "id", id)
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).
		Preload("Unit").
		Where("LOWER(email) = LOWER(?)", email).
		First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("Employee", "email", email)
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) ListByUnit(ctx context.Context, unitID int64) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.db.WithContext(ctx).
		Preload("Unit").
		Where("unit_id = ?", unitID).
		Find(&employees).Error
	return employees, err
}

// Writes omit the association so the resolved Unit attached by the service is
// never upserted through the employee.
func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	return translateDuplicate(r.db.WithContext(ctx).Omit(clause.Associations).Create(emp).Error)
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	return translateDuplicate(r.db.WithContext(ctx).Omit(clause.Associations).Save(emp).Error)
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Employee{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFound("Employee", "id", id)
	}
	return nil
}

func (r *employeeRepository) ExistsByEmail(ctx context.Context, email string, excludeID *int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("LOWER(email) = LOWER(?)", email)

	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	err := query.Count(&count).Error
	return count > 0, err
}

func (r *employeeRepository) CountByUnit(ctx context.Context, unitID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("unit_id = ?", unitID).
		Count(&count).Error
	return count, err
}
