package education

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidate_GPA(t *testing.T) {
	e := &Education{Institution: "MIT", Degree: "BSc"}
	assert.NoError(t, e.Validate())

	e.GPA = decimal.NewNullDecimal(decimal.RequireFromString("3.85"))
	assert.NoError(t, e.Validate())

	e.GPA = decimal.NewNullDecimal(decimal.RequireFromString("10.00"))
	assert.ErrorIs(t, e.Validate(), ErrGPAOutOfRange)

	e.GPA = decimal.NewNullDecimal(decimal.RequireFromString("-1"))
	assert.ErrorIs(t, e.Validate(), ErrGPAOutOfRange)
}

func TestValidate_Required(t *testing.T) {
	assert.ErrorIs(t, (&Education{Degree: "BSc"}).Validate(), ErrInstitutionRequired)
	assert.ErrorIs(t, (&Education{Institution: "MIT"}).Validate(), ErrDegreeRequired)
}

func TestNormalizeGPA(t *testing.T) {
	e := &Education{GPA: decimal.NewNullDecimal(decimal.RequireFromString("3.856"))}
	e.NormalizeGPA()
	assert.Equal(t, "3.86", e.GPA.Decimal.StringFixed(2))
}

func TestNormalizeGPA_RoundingCanLeaveRange(t *testing.T) {
	e := &Education{Institution: "MIT", Degree: "BSc", GPA: decimal.NewNullDecimal(decimal.RequireFromString("9.996"))}
	e.NormalizeGPA()
	assert.ErrorIs(t, e.Validate(), ErrGPAOutOfRange)
}
