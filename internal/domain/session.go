package domain

import (
	"strings"
	"time"
)

// Session is the record created on successful OTP verification and
// destroyed on explicit logout. Its existence is the sole authentication
// signal; absence means logged out.
type Session struct {
	UserID      string    `json:"userId"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UserIDForPhone derives the stable user identifier from a verified phone
// number: "user_" plus the digits of the number. The same phone always
// yields the same ID, which is what keys the per-user documents.
func UserIDForPhone(phoneNumber string) string {
	return "user_" + DigitsOnly(phoneNumber)
}

// DigitsOnly strips everything but 0-9 from a phone number.
func DigitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
