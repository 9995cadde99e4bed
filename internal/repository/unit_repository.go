package repository

import (
	"context"
	"errors"

	"github.com/hr-registry-api/internal/domain"
	"gorm.io/gorm"
)

// UnitRepository defines the persistence port for organizational units
type UnitRepository interface {
	List(ctx context.Context, name string) ([]domain.Unit, error)
	GetByID(ctx context.Context, id int64) (*domain.Unit, error)
	GetByCode(ctx context.Context, code string) (*domain.Unit, error)
	Create(ctx context.Context, unit *domain.Unit) error
	Update(ctx context.Context, unit *domain.Unit) error
	Delete(ctx context.Context, id int64) error
	ExistsByCode(ctx context.Context, code string, excludeID *int64) (bool, error)
}

type unitRepository struct {
	db *gorm.DB
}

// NewUnitRepository creates a new repository instance
func NewUnitRepository(db *gorm.DB) UnitRepository {
	return &unitRepository{db: db}
}

func (r *unitRepository) List(ctx context.Context, name string) ([]domain.Unit, error) {
	var units []domain.Unit
	query := r.db.WithContext(ctx)
	if name != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%")
	}
	err := query.Find(&units).Error
	return units, err
}

func (r *unitRepository) GetByID(ctx context.Context, id int64) (*domain.Unit, error) {
	var unit domain.Unit
	err := r.db.WithContext(ctx).First(&unit, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("Unit", "id", id)
		}
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepository) GetByCode(ctx context.Context, code string) (*domain.Unit, error) {
	var unit domain.Unit
	err := r.db.WithContext(ctx).Where("UPPER(code) = UPPER(?)", code).First(&unit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("Unit", "code", code)
		}
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepository) Create(ctx context.Context, unit *domain.Unit) error {
	return translateDuplicate(r.db.WithContext(ctx).Create(unit).Error)
}

func (r *unitRepository) Update(ctx context.Context, unit *domain.Unit) error {
	return translateDuplicate(r.db.WithContext(ctx).Save(unit).Error)
}

func (r *unitRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Unit{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFound("Unit", "id", id)
	}
	return nil
}

func (r *unitRepository) ExistsByCode(ctx context.Context, code string, excludeID *int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&domain.Unit{}).
		Where("UPPER(code) = UPPER(?)", code)

	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	err := query.Count(&count).Error
	return count > 0, err
}

// translateDuplicate maps the store's unique-index violation onto the domain
// sentinel. Requires gorm's TranslateError to be enabled on the connection.
func translateDuplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateKey
	}
	return err
}
