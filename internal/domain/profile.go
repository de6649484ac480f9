package domain

import (
	"errors"
	"time"
)

// Gender type for the enumerated profile field.
type Gender string

// Define constants for genders
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Validation errors for profile submission. These are local,
// pre-submission errors: they block saving and are surfaced inline.
var (
	ErrInvalidHeight = errors.New("height must be greater than zero")
	ErrInvalidWeight = errors.New("weight must be greater than zero")
	ErrInvalidAge    = errors.New("age must be a positive integer")
	ErrInvalidGender = errors.New("gender must be one of: male, female, other")
)

// UserProfile holds the one-time onboarding data for a user.
// Created once during onboarding; mutated only by a full re-submission.
type UserProfile struct {
	UserID     string    `bson:"_id" json:"-"`
	Name       string    `bson:"name,omitempty" json:"name,omitempty"`
	Age        int       `bson:"age" json:"age"`
	HeightCm   float64   `bson:"height" json:"height"`
	WeightKg   float64   `bson:"weight" json:"weight"`
	BloodGroup string    `bson:"bloodGroup" json:"bloodGroup"`
	Gender     Gender    `bson:"gender" json:"gender"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ValidateProfile checks the permitted ranges of a profile before it may
// be saved. Height and weight must be > 0, age must be a positive integer,
// and gender must be one of the enumerated values. BloodGroup is accepted
// as any string (no format validation).
func ValidateProfile(p *UserProfile) error {
	if p.HeightCm <= 0 {
		return ErrInvalidHeight
	}
	if p.WeightKg <= 0 {
		return ErrInvalidWeight
	}
	if p.Age <= 0 {
		return ErrInvalidAge
	}
	switch p.Gender {
	case GenderMale, GenderFemale, GenderOther:
		// ok
	default:
		return ErrInvalidGender
	}
	return nil
}
