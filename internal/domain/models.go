package domain

import (
	"time"
)

// Unit represents an organizational unit of the municipality (secretaria).
// The code is stored uppercased and is unique across all units.
type Unit struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Code      string    `json:"code" gorm:"type:varchar(10);not null;uniqueIndex:idx_units_code"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName sets the table name for GORM
func (Unit) TableName() string {
	return "units"
}

// Employee represents a municipal employee (servidor). Only the unit id is
// persisted; Unit is resolved at write time and preloaded on reads.
type Employee struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Email     string    `json:"email" gorm:"type:varchar(254);not null"`
	BirthDate time.Time `json:"birth_date" gorm:"type:date;not null"`
	UnitID    int64     `json:"unit_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Unit *Unit `json:"-" gorm:"foreignKey:UnitID"`
}

// TableName sets the table name for GORM
func (Employee) TableName() string {
	return "employees"
}
