package validation_test

import (
	"testing"
	"time"

	"github.com/hr-registry-api/internal/dto"
	"github.com/hr-registry-api/internal/validation"
)

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := validation.New()

	req := dto.UnitRequest{Name: "x", Code: ""}
	err := v.Struct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	fields := validation.Fields(err)
	if _, ok := fields["name"]; !ok {
		t.Errorf("expected violation keyed by json name 'name', got %v", fields)
	}
	if _, ok := fields["code"]; !ok {
		t.Errorf("expected violation keyed by json name 'code', got %v", fields)
	}
}

func TestValidator_EmployeeRequest(t *testing.T) {
	v := validation.New()

	valid := dto.EmployeeRequest{
		Name:      "João Silva",
		Email:     "joao@example.com",
		BirthDate: "1990-05-15",
		UnitID:    1,
	}
	if err := v.Struct(&valid); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	tests := []struct {
		name  string
		mut   func(r *dto.EmployeeRequest)
		field string
	}{
		{"bad email", func(r *dto.EmployeeRequest) { r.Email = "not-an-email" }, "email"},
		{"bad date format", func(r *dto.EmployeeRequest) { r.BirthDate = "15/05/1990" }, "birth_date"},
		{"future birth date", func(r *dto.EmployeeRequest) {
			r.BirthDate = time.Now().AddDate(1, 0, 0).Format(validation.DateLayout)
		}, "birth_date"},
		{"under age", func(r *dto.EmployeeRequest) {
			r.BirthDate = time.Now().AddDate(-10, 0, 0).Format(validation.DateLayout)
		}, "birth_date"},
		{"over age", func(r *dto.EmployeeRequest) {
			r.BirthDate = time.Now().AddDate(-90, 0, 0).Format(validation.DateLayout)
		}, "birth_date"},
		{"missing unit", func(r *dto.EmployeeRequest) { r.UnitID = 0 }, "unit_id"},
		{"short name", func(r *dto.EmployeeRequest) { r.Name = "J" }, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mut(&req)

			err := v.Struct(&req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			fields := validation.Fields(err)
			if _, ok := fields[tt.field]; !ok {
				t.Errorf("expected violation on %q, got %v", tt.field, fields)
			}
		})
	}
}
