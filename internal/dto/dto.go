package dto

import (
	"time"
)

// UnitRequest is the body for creating or replacing a unit. Any id embedded
// in the body is ignored; on update the path id wins.
type UnitRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	Code string `json:"code" validate:"required,min=2,max=10"`
}

// EmployeeRequest is the body for creating or replacing an employee.
type EmployeeRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02,pastdate,age"`
	UnitID    int64  `json:"unit_id" validate:"required,min=1"`
}

// UnitResponse carries unit data back to the client
type UnitResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EmployeeResponse carries employee data back to the client, including the
// derived age and the resolved unit when it was loaded.
type EmployeeResponse struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	BirthDate string        `json:"birth_date"`
	Age       int           `json:"age"`
	UnitID    int64         `json:"unit_id"`
	Unit      *UnitResponse `json:"unit,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ErrorResponse is the standard error body
type ErrorResponse struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message,omitempty"`
	Path      string            `json:"path"`
	Fields    map[string]string `json:"fields,omitempty"`
}
