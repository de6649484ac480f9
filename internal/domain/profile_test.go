package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProfile() *UserProfile {
	return &UserProfile{
		UserID:     "user_919876543210",
		Name:       "Asha",
		Age:        29,
		HeightCm:   170,
		WeightKg:   70,
		BloodGroup: "O+",
		Gender:     GenderFemale,
	}
}

func TestValidateProfile(t *testing.T) {
	assert.NoError(t, ValidateProfile(validProfile()))

	t.Run("height", func(t *testing.T) {
		p := validProfile()
		p.HeightCm = 0
		assert.ErrorIs(t, ValidateProfile(p), ErrInvalidHeight)
	})

	t.Run("weight", func(t *testing.T) {
		p := validProfile()
		p.WeightKg = -5
		assert.ErrorIs(t, ValidateProfile(p), ErrInvalidWeight)
	})

	t.Run("age", func(t *testing.T) {
		p := validProfile()
		p.Age = 0
		assert.ErrorIs(t, ValidateProfile(p), ErrInvalidAge)
	})

	t.Run("gender", func(t *testing.T) {
		p := validProfile()
		p.Gender = Gender("unknown")
		assert.ErrorIs(t, ValidateProfile(p), ErrInvalidGender)
	})

	t.Run("blood group is free-form", func(t *testing.T) {
		p := validProfile()
		p.BloodGroup = "whatever"
		assert.NoError(t, ValidateProfile(p))
	})
}
