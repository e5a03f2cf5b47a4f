package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleReview struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Email  string `json:"email" validate:"omitempty,email"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(sampleReview{Rating: 4}))

	errs := ValidateStruct(sampleReview{Rating: 9, Email: "nope"})
	assert.Equal(t, "Maximum is 5", errs["rating"])
	assert.Equal(t, "Invalid email format", errs["email"])
	assert.Equal(t, "email: Invalid email format; rating: Maximum is 5", FormatValidationErrors(errs))
}
