package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `json:"name" validate:"notblank"`
	Date string `json:"date" validate:"required,isodate"`
	Time string `json:"time" validate:"omitempty,clocktime"`
}

func TestStructValid(t *testing.T) {
	assert.NoError(t, Struct(sample{Name: "x", Date: "2025-04-05"}))
	assert.NoError(t, Struct(sample{Name: "x", Date: "2025-04-05", Time: "09:30"}))
}

func TestStructFieldErrors(t *testing.T) {
	err := Struct(sample{Name: "  ", Date: "05/04/2025", Time: "9am"})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.True(t, IsValidationError(err))

	byField := make(map[string]string)
	for _, f := range verr.Fields {
		byField[f.Field] = f.Error
	}
	assert.Equal(t, "this field cannot be blank", byField["name"])
	assert.Equal(t, "must be a date formatted YYYY-MM-DD", byField["date"])
	assert.Equal(t, "must be a time formatted HH:MM", byField["time"])
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError(errors.New("bad"), FieldError{Field: "a", Error: "oops"})
	assert.Equal(t, "bad: a: oops", err.Error())
	assert.Equal(t, "bad", NewValidationError(errors.New("bad")).Error())
	assert.False(t, IsValidationError(errors.New("plain")))
}
