package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hospital-records/pkg/apperr"
)

type registration struct {
	Username string `validate:"required"`
	Age      int    `validate:"required,gt=0"`
	Title    string `validate:"required,oneof=MD PhD Prof Docent"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&registration{Username: "Dr.Smith", Age: 40, Title: "MD"})
	assert.NoError(t, err)
}

func TestValidateNamesOffendingField(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&registration{Username: "Dr.Smith", Age: 40, Title: "Wizard"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	var vErr *apperr.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "Title", vErr.Field)
	assert.Contains(t, vErr.Reason, "MD")
}

func TestValidateRejectsNonPositiveAge(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&registration{Username: "Anna", Age: -1, Title: "MD"})
	require.Error(t, err)

	var vErr *apperr.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "Age", vErr.Field)
}
