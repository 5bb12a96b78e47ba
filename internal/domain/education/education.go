package education

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Education struct {
	ID           uuid.UUID           `json:"id"`
	OwnerID      uuid.UUID           `json:"owner_id"`
	Institution  string              `json:"institution"`
	Degree       string              `json:"degree"`
	FieldOfStudy string              `json:"field_of_study"`
	StartDate    *time.Time          `json:"start_date"`
	EndDate      *time.Time          `json:"end_date"`
	GPA          decimal.NullDecimal `json:"gpa"`
	Description  string              `json:"description"`
	CreatedAt    time.Time           `json:"created_at"`
}

var (
	ErrInstitutionRequired = errors.New("institution is required")
	ErrDegreeRequired      = errors.New("degree is required")
	ErrGPAOutOfRange       = errors.New("gpa must fit numeric(3,2)")

	maxGPA = decimal.RequireFromString("9.99")
)

func (e *Education) Validate() error {
	if e.Institution == "" {
		return ErrInstitutionRequired
	}
	if e.Degree == "" {
		return ErrDegreeRequired
	}
	if e.GPA.Valid && (e.GPA.Decimal.IsNegative() || e.GPA.Decimal.GreaterThan(maxGPA)) {
		return ErrGPAOutOfRange
	}
	return nil
}

// NormalizeGPA rounds the GPA to the two decimal places the column stores.
func (e *Education) NormalizeGPA() {
	if e.GPA.Valid {
		e.GPA.Decimal = e.GPA.Decimal.Round(2)
	}
}

type Repository interface {
	Save(ctx context.Context, e *Education) error
	// ListByOwner orders by start date, newest first; undated entries last.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Education, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}
